package common

import "math"

// LUTSize is the angle resolution for the shared trig tables: 256 entries
// mapping a full turn (2*pi) onto one byte.
const LUTSize = 256

var sinLUT [LUTSize]float64
var cosLUT [LUTSize]float64

func init() {
	for i := 0; i < LUTSize; i++ {
		angle := float64(i) * 2 * math.Pi / float64(LUTSize)
		sinLUT[i] = math.Sin(angle)
		cosLUT[i] = math.Cos(angle)
	}
}

// NormalizeAngle maps a radian angle to an LUT index in [0, LUTSize),
// accepting negative and out-of-range inputs via a true modulo.
func NormalizeAngle(radians float64) int {
	idx := int(radians*float64(LUTSize)/(2*math.Pi)) % LUTSize
	if idx < 0 {
		idx += LUTSize
	}
	return idx
}

// SinLUT returns the precomputed sine of the angle at LUT index idx.
func SinLUT(idx int) float64 {
	return sinLUT[idx&(LUTSize-1)]
}

// CosLUT returns the precomputed cosine of the angle at LUT index idx.
func CosLUT(idx int) float64 {
	return cosLUT[idx&(LUTSize-1)]
}

// SinCos is a convenience wrapper taking a raw radian angle.
func SinCos(radians float64) (sin, cos float64) {
	idx := NormalizeAngle(radians)
	return SinLUT(idx), CosLUT(idx)
}
