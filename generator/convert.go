package generator

import "math"

// Quantize shifts a trig value in [-1, 1] up into [0, 2*amplitude] and
// truncates it to an integer sample.
func Quantize(x float64, amplitude int32) int32 {
	return int32(math.Floor(float64(amplitude) * (x + 1)))
}

// Phase returns the angle for sample i of a wave repeating every period samples.
func Phase(i, period int) float64 {
	return float64(i*2) * math.Pi / float64(period)
}
