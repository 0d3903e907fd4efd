package audio

import "fmt"

// ErrVoiceNotInitialized is the internal-assert fault for a voice triggered
// before its sample rate was ever set. spec.md §4.6/§9 requires every voice
// be initialized at generator construction; this is the mandatory guard.
var ErrVoiceNotInitialized = fmt.Errorf("voice sample_rate is zero")

// Voice is the uniform contract every instrument implements: init zeroes
// state and stores the sample rate, Trigger resets the envelope/oscillator
// state (never allocates), Process adds into the accumulation buffers.
type Voice interface {
	Init(sampleRate int)
	Trigger(aux int, mt voiceTiming)
	// Process adds n stereo samples into Ld/Rd (or Ls/Rs), starting at
	// offset 0 of the slices, which are always sized >= n by the caller.
	Process(L, R []float64, n int)
	Active() bool
}

// voiceTiming is the slice of MusicTime a voice needs to derive its note
// frequency and envelope lengths from the segment's root and tempo.
type voiceTiming struct {
	SampleRate int
	RootFreq   float64
}

// sinApprox is the 5th-order polynomial sine approximation from spec.md
// §4.4, for x in [-pi, pi]. It is close to sin near zero (about 0.005 off at
// ±pi/2) and drifts toward the ends of the range, returning about ±0.52 at
// ±pi. Callers must clamp their phase into that range first.
func sinApprox(x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	x5 := x3 * x2
	return x - x3/6 + x5/120
}

const pi = 3.14159265358979323846

// wrapPi reduces x into [-pi, pi] by repeated addition/subtraction of 2*pi.
// Used before feeding any phase into sinApprox.
func wrapPi(x float64) float64 {
	const twoPi = 2 * pi
	for x > pi {
		x -= twoPi
	}
	for x < -pi {
		x += twoPi
	}
	return x
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fastNoise is a small deterministic noise generator private to the voices
// (distinct from the named PRNG streams, which are per logical purpose, not
// per-sample DSP). It uses the same LCG formula as common.PRNG so that two
// runs on the same target reproduce identical noise bursts; voices each own
// one instance seeded at Init.
type fastNoise struct {
	state uint32
}

func newFastNoise(seed uint32) *fastNoise {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &fastNoise{state: seed}
}

func (n *fastNoise) next() float64 {
	n.state = n.state*1664525 + 1013904223
	return float64(n.state)/2147483648.0 - 1.0
}
