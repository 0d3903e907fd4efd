package audio

import "sort"

// VoiceKind identifies which voice an event triggers. The enum order is the
// tie-break order for events scheduled at the same sample time.
type VoiceKind int

const (
	KindKick VoiceKind = iota
	KindSnare
	KindHat
	KindMelody
	KindMidFM
	KindBassFM
)

func (k VoiceKind) String() string {
	switch k {
	case KindKick:
		return "kick"
	case KindSnare:
		return "snare"
	case KindHat:
		return "hat"
	case KindMelody:
		return "melody"
	case KindMidFM:
		return "mid"
	case KindBassFM:
		return "fm_bass"
	default:
		return "unknown"
	}
}

// Event is one scheduled voice trigger, timestamped in absolute samples from
// the start of the segment.
type Event struct {
	TimeSamples int
	Kind        VoiceKind
	Aux         int
}

// EventQueue is the time-ordered, per-segment schedule of voice triggers.
// It is built once during init (Push) and consumed by sample-accurate
// absolute time during processing (PopDue).
type EventQueue struct {
	events []Event
	cursor int
}

// Push appends an event. Only used during init; the queue is sorted once
// after all events are pushed.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Sort orders events by time then by kind enum, and rewinds the cursor.
// Must be called once after all Push calls and before any PopDue.
func (q *EventQueue) Sort() {
	sort.SliceStable(q.events, func(i, j int) bool {
		if q.events[i].TimeSamples != q.events[j].TimeSamples {
			return q.events[i].TimeSamples < q.events[j].TimeSamples
		}
		return q.events[i].Kind < q.events[j].Kind
	})
	q.cursor = 0
}

// PopDue returns, in order, all events with TimeSamples <= now that have not
// already been returned, advancing the internal cursor. Callers must invoke
// it with a monotonically non-decreasing now.
func (q *EventQueue) PopDue(now int) []Event {
	start := q.cursor
	for q.cursor < len(q.events) && q.events[q.cursor].TimeSamples <= now {
		q.cursor++
	}
	return q.events[start:q.cursor]
}

// All returns every scheduled event, in sorted order — used by the timeline
// exporter, which needs the full schedule rather than a draining view.
func (q *EventQueue) All() []Event {
	return q.events
}
