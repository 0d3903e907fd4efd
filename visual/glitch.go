package visual

import (
	"math"

	"github.com/halvorsen/seedforge/common"
)

// GlitchBeatFrames is how many frames after a beat the "beat_explosion"
// term of the intensity formula stays at full strength (spec.md §4.12).
const GlitchBeatFrames = 3

// Intensity computes the per-frame glitch overlay intensity in [0,3]:
// base 0.1, plus audio level, plus a beat-explosion spike, plus a slow
// sine wave.
func Intensity(frame int, level float64, framesSinceBeat int) float64 {
	beatExplosion := 0.0
	if framesSinceBeat >= 0 && framesSinceBeat < GlitchBeatFrames {
		beatExplosion = 1.0
	}
	slowSine := 0.3 * math.Sin(float64(frame)*0.01)
	v := 0.1 + level*1.0 + beatExplosion + slowSine
	if v < 0 {
		v = 0
	}
	if v > 3 {
		v = 3
	}
	return v
}

// glitchHash keys every glitch sub-effect decision by position and frame
// so the overlay stays deterministic without a global random stream
// (spec.md §4.12 and §9's "multiple independent RNGs" pitfall).
func glitchHash(seed uint32, x, y, frame int) *common.PRNG {
	mixed := seed ^ uint32(x*73856093) ^ uint32(y*19349663) ^ uint32(frame*83492791)
	return common.NewStream(mixed, common.MagicGlitch)
}

// Apply runs the three glitch sub-effects over the framebuffer: character
// substitution, matrix-cascade columns, and digital-noise pixels.
func Apply(fb *Framebuffer, seed uint32, frame int, intensity float64) {
	applySubstitution(fb, seed, frame, intensity)
	applyMatrixCascade(fb, seed, frame, intensity)
	applyNoisePixels(fb, seed, frame, intensity)
}

func applySubstitution(fb *Framebuffer, seed uint32, frame int, intensity float64) {
	prob := intensity / 3 * 0.05
	if prob <= 0 {
		return
	}
	for y := 0; y < Height; y += 8 {
		for x := 0; x < Width; x += 8 {
			prng := glitchHash(seed, x, y, frame)
			if prng.Chance(prob) {
				ch := rune(32 + prng.Intn(94))
				hue := prng.Float64()
				DrawGlyph(fb, x, y, ch, HSV(hue, 1.0, 1.0))
			}
		}
	}
}

func applyMatrixCascade(fb *Framebuffer, seed uint32, frame int, intensity float64) {
	columns := int(intensity * 8)
	if columns <= 0 {
		return
	}
	totalCols := Width / 8
	for c := 0; c < columns; c++ {
		prng := glitchHash(seed, c, 0, frame/4)
		col := prng.Intn(totalCols)
		x := col * 8
		headY := (frame*6 + prng.Intn(Height)) % Height
		for trail := 0; trail < 12; trail++ {
			y := headY - trail*8
			if y < 0 {
				y += Height
			}
			val := 1.0 - float64(trail)/12.0
			DrawGlyph(fb, x, y, '1', HSV(0.33, 0.8, val))
		}
	}
}

func applyNoisePixels(fb *Framebuffer, seed uint32, frame int, intensity float64) {
	count := int(intensity * 200)
	for i := 0; i < count; i++ {
		prng := glitchHash(seed, i, 1, frame)
		x := prng.Intn(Width)
		y := prng.Intn(Height)
		v := prng.Float64()
		fb.Set(x, y, HSV(prng.Float64(), 0.2, v))
	}
}
