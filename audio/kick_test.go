package audio

import "testing"

func TestKickInactiveUntilTriggered(t *testing.T) {
	var k Kick
	k.Init(44100)
	if k.Active() {
		t.Fatalf("kick should be inactive before any trigger")
	}
}

func TestKickActiveThenDecaysToInactive(t *testing.T) {
	var k Kick
	k.Init(44100)
	k.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	if !k.Active() {
		t.Fatalf("kick should be active immediately after trigger")
	}
	L := make([]float64, 44100)
	R := make([]float64, 44100)
	k.Process(L, R, len(L))
	if k.Active() {
		t.Fatalf("kick should have fully decayed after processing its whole duration")
	}
}

func TestKickProcessOutputStaysInUnitRange(t *testing.T) {
	var k Kick
	k.Init(44100)
	k.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	L := make([]float64, 22050)
	R := make([]float64, 22050)
	k.Process(L, R, len(L))
	for i, v := range L {
		if v < -1 || v > 1 {
			t.Fatalf("L[%d] = %f, outside [-1,1]", i, v)
		}
	}
}

func TestKickProcessNoOpWhenNotActive(t *testing.T) {
	var k Kick
	k.Init(44100)
	L := make([]float64, 10)
	R := make([]float64, 10)
	k.Process(L, R, len(L))
	for i := range L {
		if L[i] != 0 || R[i] != 0 {
			t.Fatalf("untriggered kick should not write any output, got L[%d]=%f R[%d]=%f", i, L[i], i, R[i])
		}
	}
}
