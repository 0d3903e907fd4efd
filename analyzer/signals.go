package analyzer

// levelSmoothing is spec.md §4.13's fixed smoothing coefficient:
// L(f) = 0.8*L(f-1) + 0.2*L_raw(f).
const levelSmoothing = 0.8

// Frame is the fully resolved, smoothed signal set for one video frame.
type Frame struct {
	Index      int
	Level      float64
	BeatNow    bool
	BassEnergy float64
	TrebleEnergy float64
	HueBase    float64
}

// Signals wraps a Source with the smoothing state the frame driver needs.
// Frames must be consumed in order starting at 0; Next is not safe to call
// out of sequence since the smoothed level depends on the previous frame.
type Signals struct {
	src   Source
	level float64
	next  int
}

func NewSignals(src Source) *Signals {
	return &Signals{src: src}
}

func (s *Signals) TotalFrames() int { return s.src.TotalFrames() }

// Next resolves and returns the next frame's signals, advancing the
// smoothing state. ok is false once every frame has been consumed.
func (s *Signals) Next() (Frame, bool) {
	if s.next >= s.src.TotalFrames() {
		return Frame{}, false
	}
	f := s.next
	s.next++

	raw := s.src.RawLevel(f)
	s.level = levelSmoothing*s.level + (1-levelSmoothing)*raw

	return Frame{
		Index:        f,
		Level:        s.level,
		BeatNow:      s.src.BeatNow(f),
		BassEnergy:   s.src.BassEnergy(f),
		TrebleEnergy: s.src.TrebleEnergy(f),
		HueBase:      s.src.HueBase(f),
	}, true
}
