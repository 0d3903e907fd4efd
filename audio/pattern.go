package audio

// Fixed default rhythmic patterns, one bit per 16th-note step within an
// 8-step repeating cell (bit 0 = step 0 of the cell, LSB-first numbering, so
// kick's 0x91 sets bits 0, 4 and 7 and fires on steps 0, 4 and 7 of each 8).
const (
	patternKick   = 0x91
	patternSnare  = 0x44
	patternHat    = 0xAA
	patternMelody = 0x55
	patternMidFM  = 0x88
	patternBassFM = 0x11
)

var defaultPatterns = map[VoiceKind]int{
	KindKick:   patternKick,
	KindSnare:  patternSnare,
	KindHat:    patternHat,
	KindMelody: patternMelody,
	KindMidFM:  patternMidFM,
	KindBassFM: patternBassFM,
}

// voiceOrder fixes the iteration order events are pushed in per step, which
// only matters for readability since EventQueue.Sort re-establishes the
// canonical time-then-kind order.
var voiceOrder = []VoiceKind{KindKick, KindSnare, KindHat, KindMelody, KindMidFM, KindBassFM}

// BuildEventQueue constructs the full per-segment schedule. For each of the
// 32 steps and each voice kind, the fixed 8-bit pattern for that kind is
// consulted at (step mod 8); a set bit schedules a trigger. Aux carries the
// step index so voices can derive per-step pitch/variation deterministically
// (e.g. melody's scale degree is step mod 5).
func BuildEventQueue(stepSamples, stepsPerSegment int) *EventQueue {
	q := &EventQueue{}
	for step := 0; step < stepsPerSegment; step++ {
		bitPos := uint(step % 8)
		for _, kind := range voiceOrder {
			pattern := defaultPatterns[kind]
			if pattern&(1<<bitPos) != 0 {
				q.Push(Event{
					TimeSamples: step * stepSamples,
					Kind:        kind,
					Aux:         step,
				})
			}
		}
	}
	q.Sort()
	return q
}
