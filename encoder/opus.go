package encoder

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// FFmpeg encodes to opus by piping raw s16le mono samples into an
// external ffmpeg process. The process is the only owner of the output
// file; on any failure the partial file is removed so a failed cue
// leaves nothing behind.
type FFmpeg struct {
	path    string
	bitrate int // kbit/s
}

// NewFFmpeg resolves the encoder binary up front. A missing binary is
// fatal for the whole run, so it surfaces here as ErrMissing rather
// than per file.
func NewFFmpeg(binary string, bitrate int) (*FFmpeg, error) {
	if binary == "" {
		binary = "ffmpeg"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, binary)
	}
	return &FFmpeg{path: path, bitrate: bitrate}, nil
}

func (f *FFmpeg) Ext() string {
	return "opus"
}

func (f *FFmpeg) Encode(samples []int16, path string) error {
	cmd := exec.Command(f.path,
		"-f", "s16le",
		"-ar", strconv.Itoa(SampleRate),
		"-ac", strconv.Itoa(Channels),
		"-i", "pipe:0",
		"-codec:a", "libopus",
		"-b:a", strconv.Itoa(f.bitrate)+"k",
		"-loglevel", "error",
		"-y",
		path,
	)
	cmd.Stdin = bytes.NewReader(Bytes(samples))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return &EncodeError{File: path, Err: err, Detail: strings.TrimSpace(stderr.String())}
	}
	return nil
}
