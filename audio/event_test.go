package audio

import "testing"

func TestEventQueueSortOrdersByTimeThenKind(t *testing.T) {
	q := &EventQueue{}
	q.Push(Event{TimeSamples: 100, Kind: KindBassFM})
	q.Push(Event{TimeSamples: 100, Kind: KindKick})
	q.Push(Event{TimeSamples: 50, Kind: KindHat})
	q.Sort()

	all := q.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].TimeSamples != 50 {
		t.Fatalf("first event should be the earliest time, got %d", all[0].TimeSamples)
	}
	if all[1].Kind != KindKick || all[2].Kind != KindBassFM {
		t.Fatalf("events at the same time should tie-break by ascending kind enum, got %v then %v", all[1].Kind, all[2].Kind)
	}
}

func TestEventQueuePopDueIsMonotonicAndExhaustive(t *testing.T) {
	q := &EventQueue{}
	q.Push(Event{TimeSamples: 0, Kind: KindKick})
	q.Push(Event{TimeSamples: 10, Kind: KindSnare})
	q.Push(Event{TimeSamples: 20, Kind: KindHat})
	q.Sort()

	first := q.PopDue(5)
	if len(first) != 1 || first[0].Kind != KindKick {
		t.Fatalf("PopDue(5) should return only the t=0 event, got %v", first)
	}
	second := q.PopDue(15)
	if len(second) != 1 || second[0].Kind != KindSnare {
		t.Fatalf("PopDue(15) should return only the t=10 event, got %v", second)
	}
	none := q.PopDue(15)
	if len(none) != 0 {
		t.Fatalf("PopDue called twice at the same now should not re-return events, got %v", none)
	}
	rest := q.PopDue(100)
	if len(rest) != 1 || rest[0].Kind != KindHat {
		t.Fatalf("PopDue(100) should drain the remaining event, got %v", rest)
	}
}

func TestEventQueueAllReturnsFullSortedSchedule(t *testing.T) {
	q := &EventQueue{}
	q.Push(Event{TimeSamples: 30, Kind: KindMelody})
	q.Push(Event{TimeSamples: 10, Kind: KindKick})
	q.Sort()
	all := q.All()
	if len(all) != 2 || all[0].TimeSamples != 10 || all[1].TimeSamples != 30 {
		t.Fatalf("All() did not return the full sorted schedule: %v", all)
	}
}

func TestVoiceKindStringNames(t *testing.T) {
	cases := map[VoiceKind]string{
		KindKick:   "kick",
		KindSnare:  "snare",
		KindHat:    "hat",
		KindMelody: "melody",
		KindMidFM:  "mid",
		KindBassFM: "fm_bass",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
