package audio

import "testing"

func TestBuildEventQueueMidFMFiresOnSpecScenarioSteps(t *testing.T) {
	q := BuildEventQueue(1000, 32)
	var steps []int
	for _, e := range q.All() {
		if e.Kind == KindMidFM {
			steps = append(steps, e.Aux)
		}
	}
	want := []int{3, 7, 11, 15, 19, 23, 27, 31}
	if len(steps) != len(want) {
		t.Fatalf("mid_fm fired %d times, want %d (%v)", len(steps), len(want), steps)
	}
	for i, s := range want {
		if steps[i] != s {
			t.Fatalf("mid_fm step[%d] = %d, want %d", i, steps[i], s)
		}
	}
}

func TestBuildEventQueueEventsAreSampleAligned(t *testing.T) {
	const stepSamples = 2205
	q := BuildEventQueue(stepSamples, 32)
	for _, e := range q.All() {
		if e.TimeSamples%stepSamples != 0 {
			t.Fatalf("event at step %d has non-step-aligned time %d", e.Aux, e.TimeSamples)
		}
		if e.TimeSamples != e.Aux*stepSamples {
			t.Fatalf("event time %d does not match step*stepSamples (%d*%d)", e.TimeSamples, e.Aux, stepSamples)
		}
	}
}

func TestBuildEventQueueKickFiresAtPatternBits(t *testing.T) {
	// 0x91 = 10010001: bits 0, 4, 7 set.
	q := BuildEventQueue(100, 8)
	var steps []int
	for _, e := range q.All() {
		if e.Kind == KindKick {
			steps = append(steps, e.Aux)
		}
	}
	want := []int{0, 4, 7}
	if len(steps) != len(want) {
		t.Fatalf("kick fired at steps %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("kick steps = %v, want %v", steps, want)
		}
	}
}

func TestBuildEventQueueIsSortedAndDeterministic(t *testing.T) {
	a := BuildEventQueue(500, 32).All()
	b := BuildEventQueue(500, 32).All()
	if len(a) != len(b) {
		t.Fatalf("two builds with identical params produced different event counts")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("event %d differs between builds: %v vs %v", i, a[i], b[i])
		}
	}
	for i := 1; i < len(a); i++ {
		if a[i].TimeSamples < a[i-1].TimeSamples {
			t.Fatalf("events not sorted by time at index %d", i)
		}
	}
}
