package analyzer

import (
	"sort"

	"github.com/halvorsen/seedforge/timeline"
)

// kindWeight assigns each voice kind's contribution to per-frame raw level,
// bass energy and treble energy. Kick and bass_fm are the low end, hat and
// mid_fm the high end; snare and melody sit in between, with snare adding a
// little to both bands and melody adding to treble only.
func kindWeight(kind string) (level, bass, treble float64) {
	switch kind {
	case "kick":
		return 1.0, 1.0, 0.0
	case "fm_bass":
		return 0.9, 0.8, 0.0
	case "snare":
		return 0.6, 0.2, 0.2
	case "melody":
		return 0.4, 0.0, 0.3
	case "mid":
		return 0.5, 0.0, 0.5
	case "hat":
		return 0.3, 0.0, 0.7
	default:
		return 0.2, 0.0, 0.0
	}
}

// TimelineSource derives frame signals directly from the sidecar, the
// primary path of spec.md §2 and §4.13: exact event timestamps mean no
// signal estimation is needed beyond bucketing events into frame windows.
type TimelineSource struct {
	tl          timeline.Timeline
	frameEvents [][]timeline.Event // events falling in each frame's sample window
	beatFrame   []bool
	totalFrames int
}

// NewTimelineSource buckets every event and beat sample index of tl into its
// containing 60fps frame window.
func NewTimelineSource(tl timeline.Timeline) *TimelineSource {
	total := TotalFrames(tl.TotalSamples, tl.SampleRate)
	frameLen := FrameSamples(tl.SampleRate)

	frameOf := func(sample int) int {
		f := int(float64(sample) / frameLen)
		if f >= total {
			f = total - 1
		}
		if f < 0 {
			f = 0
		}
		return f
	}

	src := &TimelineSource{
		tl:          tl,
		frameEvents: make([][]timeline.Event, total),
		beatFrame:   make([]bool, total),
		totalFrames: total,
	}

	events := append([]timeline.Event(nil), tl.Events...)
	sort.SliceStable(events, func(i, j int) bool { return events[i].T < events[j].T })
	for _, e := range events {
		f := frameOf(e.T)
		src.frameEvents[f] = append(src.frameEvents[f], e)
	}
	for _, b := range tl.Beats {
		src.beatFrame[frameOf(b)] = true
	}
	return src
}

func (s *TimelineSource) TotalFrames() int { return s.totalFrames }

func (s *TimelineSource) RawLevel(frame int) float64 {
	if frame < 0 || frame >= s.totalFrames {
		return 0
	}
	var sum float64
	for _, e := range s.frameEvents[frame] {
		lvl, _, _ := kindWeight(e.Kind)
		sum += lvl
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}

func (s *TimelineSource) BeatNow(frame int) bool {
	if frame < 0 || frame >= s.totalFrames {
		return false
	}
	return s.beatFrame[frame]
}

func (s *TimelineSource) BassEnergy(frame int) float64 {
	if frame < 0 || frame >= s.totalFrames {
		return 0
	}
	var sum float64
	for _, e := range s.frameEvents[frame] {
		_, bass, _ := kindWeight(e.Kind)
		sum += bass
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}

func (s *TimelineSource) TrebleEnergy(frame int) float64 {
	if frame < 0 || frame >= s.totalFrames {
		return 0
	}
	var sum float64
	for _, e := range s.frameEvents[frame] {
		_, _, treble := kindWeight(e.Kind)
		sum += treble
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}

// HueBase drifts slowly across the segment and offsets by the derived BPM,
// so two seeds with different tempos start their palettes at different
// points in the color wheel without needing a dedicated PRNG stream.
func (s *TimelineSource) HueBase(frame int) float64 {
	offset := s.tl.BPM / 360.0
	drift := float64(frame) * 0.0015
	h := offset + drift
	h -= float64(int(h))
	return h
}
