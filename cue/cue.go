// Package cue defines the game's sound effects and turns each one into
// a single waveform ready for export.
package cue

import "assetgen/synth"

// Segment is one synthesis step of a cue. Freqs holds the frequencies
// to sum (a single entry is a plain tone); SweepTo, when nonzero,
// glides from Freqs[0] to SweepTo instead. Each segment carries its own
// attack/release so compound cues stay click-free at segment joins.
type Segment struct {
	Freqs    []float64
	SweepTo  float64
	Duration float64 // seconds
	Volume   float64
	Attack   float64 // seconds
	Release  float64 // seconds
}

// Cue is a named sound effect built from one or more segments played
// back to back.
type Cue struct {
	Name     string
	Segments []Segment
}

// Filename returns the output name for the given encoder extension,
// e.g. "click.opus".
func (c Cue) Filename(ext string) string {
	return c.Name + "." + ext
}

// Waveform renders the cue: each segment is generated and enveloped
// independently, then the segments are concatenated in order. The
// per-segment envelopes are what make plain concatenation safe; a
// segment must decay to zero at its tail and rise from zero at its
// head before it may be joined to a neighbor.
func (c Cue) Waveform() synth.Waveform {
	parts := make([]synth.Waveform, 0, len(c.Segments))
	for _, seg := range c.Segments {
		var w synth.Waveform
		switch {
		case seg.SweepTo != 0:
			w = synth.Sweep(seg.Freqs[0], seg.SweepTo, seg.Duration, seg.Volume)
		case len(seg.Freqs) == 1:
			w = synth.Tone(seg.Freqs[0], seg.Duration, seg.Volume)
		default:
			w = synth.MultiTone(seg.Freqs, seg.Duration, seg.Volume)
		}
		parts = append(parts, w.Envelope(seg.Attack, seg.Release))
	}
	return synth.Concat(parts...)
}

// All is the full set of game sound effects, in export order.
var All = []Cue{
	{
		// Major chord for a perfect hit.
		Name: "perfect",
		Segments: []Segment{
			{Freqs: []float64{800, 1000, 1200}, Duration: 0.3, Volume: 0.25, Attack: 0.01, Release: 0.1},
		},
	},
	{
		Name: "great",
		Segments: []Segment{
			{Freqs: []float64{600}, Duration: 0.3, Volume: 0.3, Attack: 0.01, Release: 0.1},
		},
	},
	{
		Name: "ok",
		Segments: []Segment{
			{Freqs: []float64{400}, Duration: 0.3, Volume: 0.3, Attack: 0.02, Release: 0.1},
		},
	},
	{
		// Two close frequencies beat against each other for dissonance.
		Name: "miss",
		Segments: []Segment{
			{Freqs: []float64{200, 210}, Duration: 0.2, Volume: 0.3, Attack: 0.01, Release: 0.05},
		},
	},
	{
		Name: "combo",
		Segments: []Segment{
			{Freqs: []float64{400}, SweepTo: 800, Duration: 0.4, Volume: 0.25, Attack: 0.01, Release: 0.1},
		},
	},
	{
		// Ascending C5-E5-G5 arpeggio, last note held longer.
		Name: "victory",
		Segments: []Segment{
			{Freqs: []float64{523}, Duration: 0.15, Volume: 0.3, Attack: 0.01, Release: 0.05},
			{Freqs: []float64{659}, Duration: 0.15, Volume: 0.3, Attack: 0.01, Release: 0.05},
			{Freqs: []float64{784}, Duration: 0.3, Volume: 0.3, Attack: 0.01, Release: 0.15},
		},
	},
	{
		Name: "failure",
		Segments: []Segment{
			{Freqs: []float64{400}, SweepTo: 200, Duration: 0.5, Volume: 0.25, Attack: 0.02, Release: 0.15},
		},
	},
	{
		Name: "click",
		Segments: []Segment{
			{Freqs: []float64{1200}, Duration: 0.05, Volume: 0.2, Attack: 0.005, Release: 0.02},
		},
	},
}
