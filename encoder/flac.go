package encoder

import (
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// Flac writes FLAC files in-process and needs no external binary.
type Flac struct{}

func NewFlac() *Flac {
	return &Flac{}
}

func (*Flac) Ext() string {
	return "flac"
}

func (*Flac) Encode(samples []int16, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{File: path, Err: err}
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  BlockSize,
		BlockSizeMax:  BlockSize,
		SampleRate:    SampleRate,
		NChannels:     Channels,
		BitsPerSample: BitsPerSample,
		NSamples:      0,
	}
	enc, err := flac.NewEncoder(f, info)
	if err != nil {
		f.Close()
		os.Remove(path)
		return &EncodeError{File: path, Err: err}
	}
	enc.EnablePredictionAnalysis(true)

	for i := 0; i < len(samples); i += BlockSize {
		end := i + BlockSize
		if end > len(samples) {
			end = len(samples)
		}
		if err := writeFlacBlock(enc, samples[i:end]); err != nil {
			enc.Close()
			os.Remove(path)
			return &EncodeError{File: path, Err: err}
		}
	}

	// enc.Close also closes the underlying file; closing f again here
	// would fail with os.ErrClosed.
	if err := enc.Close(); err != nil {
		os.Remove(path)
		return &EncodeError{File: path, Err: err}
	}
	return nil
}

func writeFlacBlock(enc *flac.Encoder, block []int16) error {
	samples32 := make([]int32, len(block))
	for i, s := range block {
		samples32[i] = int32(s)
	}

	subframe := &frame.Subframe{
		SubHeader: frame.SubHeader{
			Pred: frame.PredVerbatim,
		},
		Samples:  samples32,
		NSamples: len(block),
	}

	return enc.WriteFrame(&frame.Frame{
		Header: frame.Header{
			BlockSize:     uint16(len(block)),
			SampleRate:    SampleRate,
			Channels:      frame.ChannelsMono,
			BitsPerSample: BitsPerSample,
		},
		Subframes: []*frame.Subframe{subframe},
	})
}
