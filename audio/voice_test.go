package audio

import (
	"math"
	"testing"
)

func TestSinApproxMatchesMathSinNearZero(t *testing.T) {
	for _, x := range []float64{0, 0.1, -0.1, 1.0, -1.0, pi / 2, -pi / 2} {
		got := sinApprox(x)
		want := math.Sin(x)
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("sinApprox(%f) = %f, want ~%f", x, got, want)
		}
	}
}

func TestWrapPiKeepsValueInRange(t *testing.T) {
	for _, x := range []float64{0, pi, -pi, 10 * pi, -10 * pi, 3.7} {
		got := wrapPi(x)
		if got < -pi-1e-9 || got > pi+1e-9 {
			t.Fatalf("wrapPi(%f) = %f, outside [-pi,pi]", x, got)
		}
	}
}

func TestClampBounds(t *testing.T) {
	if clamp(5, -1, 1) != 1 {
		t.Fatalf("clamp(5,-1,1) should saturate at 1")
	}
	if clamp(-5, -1, 1) != -1 {
		t.Fatalf("clamp(-5,-1,1) should saturate at -1")
	}
	if clamp(0.5, -1, 1) != 0.5 {
		t.Fatalf("clamp(0.5,-1,1) should pass through unchanged")
	}
}

func TestFastNoiseDeterministicAndBounded(t *testing.T) {
	a := newFastNoise(42)
	b := newFastNoise(42)
	for i := 0; i < 200; i++ {
		va, vb := a.next(), b.next()
		if va != vb {
			t.Fatalf("identical seeds diverged at iteration %d", i)
		}
		if va < -1 || va > 1 {
			t.Fatalf("fastNoise.next() = %f, outside [-1,1]", va)
		}
	}
}

func TestFastNoiseZeroSeedFallsBackToNonzero(t *testing.T) {
	n := newFastNoise(0)
	if n.state == 0 {
		t.Fatalf("newFastNoise(0) should substitute a nonzero seed")
	}
}

func TestVoiceTriggerPanicsWhenUninitialized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic triggering an uninitialized voice")
		}
	}()
	var k Kick
	k.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
}
