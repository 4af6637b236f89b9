// Package synth generates the raw waveforms for the game sound effects.
// All operations work on float64 samples in [-1, 1] at a fixed 48kHz rate
// and return new buffers; nothing mutates its input.
package synth

import "math"

const SampleRate = 48000

// Waveform is an immutable sequence of samples at SampleRate.
type Waveform []float64

// numSamples converts a duration in seconds to a sample count.
// Non-positive durations yield an empty waveform.
func numSamples(duration float64) int {
	n := int(math.Round(SampleRate * duration))
	if n < 0 {
		return 0
	}
	return n
}

// Tone generates a sine wave. A negative frequency flips the phase,
// it is not an error.
func Tone(freq, duration, volume float64) Waveform {
	n := numSamples(duration)
	w := make(Waveform, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		w[i] = volume * math.Sin(2*math.Pi*freq*t)
	}
	return w
}

// MultiTone generates a chord: the sum of one tone per frequency, each
// at volume/len(freqs) so the total stays bounded by volume regardless
// of chord size.
func MultiTone(freqs []float64, duration, volume float64) Waveform {
	n := numSamples(duration)
	w := make(Waveform, n)
	if len(freqs) == 0 {
		return w
	}
	part := volume / float64(len(freqs))
	for _, f := range freqs {
		for i := 0; i < n; i++ {
			t := float64(i) / SampleRate
			w[i] += part * math.Sin(2*math.Pi*f*t)
		}
	}
	return w
}

// Sweep generates a tone whose frequency moves linearly from startFreq
// to endFreq. Phase is accumulated sample by sample so there are no
// discontinuities, and a sweep with startFreq == endFreq degenerates to
// a plain Tone.
func Sweep(startFreq, endFreq, duration, volume float64) Waveform {
	n := numSamples(duration)
	w := make(Waveform, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		w[i] = volume * math.Sin(phase)
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		freq := startFreq + (endFreq-startFreq)*frac
		phase += 2 * math.Pi * freq / SampleRate
	}
	return w
}

// Envelope returns a copy of w with a linear attack ramp (0 to 1) over
// the first attack seconds and a linear release ramp (1 to 0) over the
// last release seconds. The middle is untouched, so the result starts
// and ends at zero amplitude. If the two windows overlap on a short
// waveform, the attack is applied first and the release then multiplies
// the already-ramped samples.
func (w Waveform) Envelope(attack, release float64) Waveform {
	out := make(Waveform, len(w))
	copy(out, w)

	attackSamples := numSamples(attack)
	if attackSamples > len(out) {
		attackSamples = len(out)
	}
	for i := 0; i < attackSamples; i++ {
		out[i] *= ramp(i, attackSamples)
	}

	releaseSamples := numSamples(release)
	if releaseSamples > len(out) {
		releaseSamples = len(out)
	}
	for i := 0; i < releaseSamples; i++ {
		idx := len(out) - releaseSamples + i
		out[idx] *= ramp(releaseSamples-1-i, releaseSamples)
	}
	return out
}

// ramp is the linear ramp value at position i of an n-sample window,
// running 0 at i=0 up to 1 at i=n-1. A single-sample window is 0 so a
// degenerate envelope still pins its edge to silence.
func ramp(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Concat joins waveforms end to end, in order, with no cross-fade.
func Concat(parts ...Waveform) Waveform {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make(Waveform, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Peak returns the maximum absolute sample value.
func (w Waveform) Peak() float64 {
	peak := 0.0
	for _, s := range w {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Duration returns the waveform length in seconds.
func (w Waveform) Duration() float64 {
	return float64(len(w)) / SampleRate
}
