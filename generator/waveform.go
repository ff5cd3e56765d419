package generator

import (
	"iter"
	"math"
)

const (
	// SampleCount is the number of points per channel loaded into the DDS memory.
	SampleCount = 24000
	// Period is the number of samples in one cycle.
	Period = 100
	// Amplitude is half of the unsigned 16-bit DAC range.
	Amplitude = 0x7FFF
)

// Waveform describes the two-channel test pattern to generate.
type Waveform struct {
	Count     int
	Period    int
	Amplitude int32
}

// DefaultWaveform is the pattern the test harness expects.
var DefaultWaveform = Waveform{
	Count:     SampleCount,
	Period:    Period,
	Amplitude: Amplitude,
}

// Pair is a single address worth of samples, one per channel.
type Pair struct {
	A int32
	B int32
}

// Samples holds the two channels. Both slices always have the same length
// and the index into them is the memory address.
type Samples struct {
	A []int32
	B []int32
}

// Generate computes channel A as a sine and channel B as a cosine over
// w.Count points.
func Generate(w Waveform) Samples {
	if w.Count < 0 {
		w.Count = 0
	}
	s := Samples{
		A: make([]int32, w.Count),
		B: make([]int32, w.Count),
	}
	for i := 0; i < w.Count; i++ {
		phase := Phase(i, w.Period)
		s.A[i] = Quantize(math.Sin(phase), w.Amplitude)
		s.B[i] = Quantize(math.Cos(phase), w.Amplitude)
	}
	return s
}

// Len returns the number of addresses.
func (s Samples) Len() int {
	return len(s.A)
}

// At returns the pair stored at address i.
func (s Samples) At(i int) Pair {
	return Pair{A: s.A[i], B: s.B[i]}
}

// All yields every address in ascending order.
func (s Samples) All() iter.Seq2[int, Pair] {
	return s.Range(0, s.Len())
}

// Range yields the addresses in [lo, hi), clamped to the sample count.
func (s Samples) Range(lo, hi int) iter.Seq2[int, Pair] {
	lo = max(lo, 0)
	hi = min(hi, s.Len())
	return func(yield func(int, Pair) bool) {
		for i := lo; i < hi; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
