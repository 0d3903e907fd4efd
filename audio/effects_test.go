package audio

import "testing"

func TestNewDelayEnforcesMinimumBufferLength(t *testing.T) {
	d := NewDelay(44100, 10)
	minLen := int(minDelayBufferSec * 44100)
	if len(d.bufL) < minLen {
		t.Fatalf("delay buffer length %d is shorter than the minimum %d", len(d.bufL), minLen)
	}
}

func TestNewDelayKeepsLongerRequestedLength(t *testing.T) {
	requested := int(2.0 * 44100)
	d := NewDelay(44100, requested)
	if len(d.bufL) != requested {
		t.Fatalf("delay buffer length = %d, want requested length %d", len(d.bufL), requested)
	}
}

func TestDelayProducesDelayedSignalAfterBufferLength(t *testing.T) {
	d := NewDelay(44100, 4)
	// NewDelay raises the 4-sample request to the 0.75s minimum buffer; the
	// impulse's wet return arrives one full buffer length later.
	bufLen := len(d.bufL)
	L := make([]float64, bufLen+1)
	R := make([]float64, bufLen+1)
	L[0] = 1.0
	d.Process(L, R, len(L))
	if L[bufLen] == 0 {
		t.Fatalf("expected nonzero wet contribution one buffer length after the impulse")
	}
}

func TestLimiterGuaranteesOutputWithinUnitRange(t *testing.T) {
	lm := NewLimiter()
	L := make([]float64, 1000)
	R := make([]float64, 1000)
	for i := range L {
		L[i] = 5.0
		R[i] = -5.0
	}
	lm.Process(L, R, len(L))
	for i := range L {
		if L[i] < -1 || L[i] > 1 {
			t.Fatalf("L[%d] = %f, limiter must guarantee |y| <= 1.0", i, L[i])
		}
		if R[i] < -1 || R[i] > 1 {
			t.Fatalf("R[%d] = %f, limiter must guarantee |y| <= 1.0", i, R[i])
		}
	}
}

func TestLimiterLeavesQuietSignalUnchanged(t *testing.T) {
	lm := NewLimiter()
	L := []float64{0.1, 0.1, 0.1}
	R := []float64{-0.1, -0.1, -0.1}
	lm.Process(L, R, len(L))
	for i, v := range L {
		if v < 0.09 || v > 0.11 {
			t.Fatalf("quiet signal should pass through close to unchanged, got L[%d]=%f", i, v)
		}
	}
}

func TestAbsf(t *testing.T) {
	if absf(-3.5) != 3.5 {
		t.Fatalf("absf(-3.5) != 3.5")
	}
	if absf(3.5) != 3.5 {
		t.Fatalf("absf(3.5) != 3.5")
	}
}
