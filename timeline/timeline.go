// Package timeline implements the sidecar: a structured record of every
// scheduled audio event, exported alongside the WAV so the visual renderer
// can stay perfectly in sync without re-deriving the schedule.
package timeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/halvorsen/seedforge/audio"
	"github.com/halvorsen/seedforge/common"
)

// Event is one sample-timestamped, kind-tagged trigger in the sidecar.
type Event struct {
	T    int    `json:"t"`
	Kind string `json:"kind"`
	Aux  int    `json:"aux"`
}

// Timeline is the primary source of truth for the visual renderer: seed,
// derived timing, every step/beat sample index, and the full event
// schedule.
type Timeline struct {
	Seed         uint32
	SampleRate   int
	BPM          float64
	StepSamples  int
	TotalSamples int
	Steps        []int
	Beats        []int
	Events       []Event
}

// wireFormat mirrors the JSON schema in spec.md §6 exactly, including the
// hex-string seed rendering.
type wireFormat struct {
	Seed         string  `json:"seed"`
	SampleRate   int     `json:"sample_rate"`
	BPM          float64 `json:"bpm"`
	StepSamples  int     `json:"step_samples"`
	TotalSamples int     `json:"total_samples"`
	Steps        []int   `json:"steps"`
	Beats        []int   `json:"beats"`
	Events       []Event `json:"events"`
}

// FromGenerator builds the Timeline for a generator's segment. The
// generator must already have been constructed (and thus have built its
// event queue) for this to reflect the real schedule.
func FromGenerator(seed uint32, g *audio.Generator) Timeline {
	mt := g.MusicTime()

	steps := make([]int, mt.StepsPerSeg)
	for i := range steps {
		steps[i] = i * mt.StepSamples
	}
	beats := make([]int, 0, mt.StepsPerSeg/4)
	for i := 0; i < mt.StepsPerSeg; i += 4 {
		beats = append(beats, steps[i])
	}

	events := make([]Event, 0, len(g.Queue().All()))
	for _, e := range g.Queue().All() {
		events = append(events, Event{T: e.TimeSamples, Kind: e.Kind.String(), Aux: e.Aux})
	}

	return Timeline{
		Seed:         seed,
		SampleRate:   mt.SampleRate,
		BPM:          float64(mt.BPM),
		StepSamples:  mt.StepSamples,
		TotalSamples: mt.TotalSamples,
		Steps:        steps,
		Beats:        beats,
		Events:       events,
	}
}

// Encode writes the JSON sidecar to w. Re-encoding the same Timeline value
// always produces byte-identical output (spec.md §8's round-trip property)
// since encoding/json serializes struct fields in a fixed declared order.
func (t Timeline) Encode(w io.Writer) error {
	wire := wireFormat{
		Seed:         common.FormatSeed(t.Seed),
		SampleRate:   t.SampleRate,
		BPM:          t.BPM,
		StepSamples:  t.StepSamples,
		TotalSamples: t.TotalSamples,
		Steps:        t.Steps,
		Beats:        t.Beats,
		Events:       t.Events,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	return nil
}

// Decode reads a sidecar JSON document previously written by Encode.
func Decode(r io.Reader) (Timeline, error) {
	var wire wireFormat
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return Timeline{}, fmt.Errorf("decode timeline: %w", err)
	}
	seed, err := common.ParseSeed(wire.Seed)
	if err != nil {
		return Timeline{}, fmt.Errorf("decode timeline: %w", err)
	}
	return Timeline{
		Seed:         seed,
		SampleRate:   wire.SampleRate,
		BPM:          wire.BPM,
		StepSamples:  wire.StepSamples,
		TotalSamples: wire.TotalSamples,
		Steps:        wire.Steps,
		Beats:        wire.Beats,
		Events:       wire.Events,
	}, nil
}

// Validate checks the timeline fidelity invariants of spec.md §8: every
// event's t is within the segment, and events are sorted non-decreasingly.
func (t Timeline) Validate() error {
	last := -1
	for _, e := range t.Events {
		if e.T >= t.TotalSamples {
			return fmt.Errorf("timeline: event at t=%d is past total_samples=%d", e.T, t.TotalSamples)
		}
		if e.T < last {
			return fmt.Errorf("timeline: events are not sorted non-decreasingly at t=%d", e.T)
		}
		last = e.T
	}
	return nil
}
