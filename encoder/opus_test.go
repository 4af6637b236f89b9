package encoder

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeStub creates a fake encoder executable for subprocess tests.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub encoder scripts require a unix shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

const stubOK = `#!/bin/sh
cat >/dev/null
for a in "$@"; do out="$a"; done
printf 'OggS' > "$out"
`

// stubFail writes a partial file and then reports failure, like an
// encoder dying halfway through.
const stubFail = `#!/bin/sh
cat >/dev/null
for a in "$@"; do out="$a"; done
printf 'partial' > "$out"
exit 3
`

func TestNewFFmpegMissingBinary(t *testing.T) {
	_, err := NewFFmpeg("definitely-not-an-encoder-binary", 64)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", err)
	}
}

func TestFFmpegExt(t *testing.T) {
	enc, err := NewFFmpeg(writeStub(t, stubOK), 64)
	if err != nil {
		t.Fatal(err)
	}
	if enc.Ext() != "opus" {
		t.Errorf("Ext = %q, want opus", enc.Ext())
	}
}

func TestFFmpegEncodeWritesFile(t *testing.T) {
	enc, err := NewFFmpeg(writeStub(t, stubOK), 64)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "click.opus")
	if err := enc.Encode([]int16{0, 100, -100}, out); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(data) != "OggS" {
		t.Errorf("output = %q, want stub payload", data)
	}
}

func TestFFmpegEncodeNonzeroExit(t *testing.T) {
	enc, err := NewFFmpeg(writeStub(t, stubFail), 64)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "miss.opus")
	err = enc.Encode([]int16{1, 2, 3}, out)

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want *EncodeError", err)
	}
	if encErr.File != out {
		t.Errorf("EncodeError.File = %q, want %q", encErr.File, out)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("partial output left behind after failed encode")
	}
}
