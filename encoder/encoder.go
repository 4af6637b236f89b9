package encoder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"assetgen/synth"
)

const (
	SampleRate    = synth.SampleRate
	Channels      = 1
	BitsPerSample = 16
	BlockSize     = 4096
)

// ErrMissing means the encoder binary could not be located. It is fatal
// for the whole run: no further export can succeed without it.
var ErrMissing = errors.New("encoder binary not found")

// EncodeError is a per-file encoding failure. The affected file is
// skipped and the batch continues.
type EncodeError struct {
	File   string
	Err    error
	Detail string // encoder stderr, when available
}

func (e *EncodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("encoding %s: %v: %s", e.File, e.Err, e.Detail)
	}
	return fmt.Sprintf("encoding %s: %v", e.File, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Encoder writes one PCM buffer to one compressed audio file.
type Encoder interface {
	Encode(samples []int16, path string) error
	Ext() string
}

// ToPCM converts float samples to signed 16-bit PCM. Out-of-range
// samples saturate at ±32767 instead of wrapping; callers should keep
// peak amplitude under 1.0, but an overloud waveform must clip, not
// corrupt.
func ToPCM(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := math.Round(s * 32767)
		if v > 32767 {
			v = 32767
		} else if v < -32767 {
			v = -32767
		}
		out[i] = int16(v)
	}
	return out
}

// Bytes serializes PCM samples to little-endian bytes.
func Bytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}
