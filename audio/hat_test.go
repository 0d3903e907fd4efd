package audio

import "testing"

func TestHatActiveThenDecaysToInactive(t *testing.T) {
	var h Hat
	h.Init(44100)
	h.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	if !h.Active() {
		t.Fatalf("hat should be active immediately after trigger")
	}
	L := make([]float64, 44100)
	R := make([]float64, 44100)
	h.Process(L, R, len(L))
	if h.Active() {
		t.Fatalf("hat should have fully decayed well within a full second")
	}
}

func TestHatProcessOutputStaysInUnitRange(t *testing.T) {
	var h Hat
	h.Init(44100)
	h.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	L := make([]float64, 2205)
	R := make([]float64, 2205)
	h.Process(L, R, len(L))
	for i, v := range L {
		if v < -1 || v > 1 {
			t.Fatalf("L[%d] = %f, outside [-1,1]", i, v)
		}
	}
}

func TestHatShorterThanKick(t *testing.T) {
	var h Hat
	var k Kick
	h.Init(44100)
	k.Init(44100)
	h.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	k.Trigger(0, voiceTiming{SampleRate: 44100, RootFreq: 220})
	if hatDurationSec >= kickDurationSec {
		t.Fatalf("hat duration %f should be much shorter than kick duration %f", hatDurationSec, kickDurationSec)
	}
}
