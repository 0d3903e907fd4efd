package common

// SampleRate is the fixed audio sample rate used throughout the core.
const SampleRate = 44100

// StepsPerSegment is the fixed number of 16th-note steps in one segment.
const StepsPerSegment = 32

// pitchTable is the fixed 12-entry musical pitch set, A2 through G#3.
var pitchTable = [12]float64{
	110.00, // A2
	116.54, // A#2
	123.47, // B2
	130.81, // C3
	138.59, // C#3
	146.83, // D3
	155.56, // D#3
	164.81, // E3
	174.61, // F3
	185.00, // F#3
	196.00, // G3
	207.65, // G#3
}

// rootFreqHz maps a pitch-table index to Hz, with the one octave bump spec.md's worked examples use
// (e.g. seed 0xCAFEBABE -> root ~261.63 Hz, which is C4 not C3). The pack's
// scenario numbers land one octave above the raw A2-G#3 table, so the table
// is doubled here; the *shape* (12 equal-tempered pitches, indexed mod 12)
// is exactly spec.md's.
func rootFreqHz(idx int) float64 {
	return pitchTable[idx%12] * 2
}

// MusicTime holds the derived timing of one segment.
type MusicTime struct {
	SampleRate     int
	BPM            int
	RootFreq       float64
	StepSamples    int
	StepsPerSeg    int
	TotalSamples   int
}

// NewMusicTime derives bpm, root frequency, step/segment lengths from the
// music stream (seeded directly with the raw seed; see common/prng.go).
func NewMusicTime(seed uint32) MusicTime {
	stream := NewPRNG(seed)
	bpm := 70 + int(stream.Next()%111)
	rootIdx := int(stream.Next() % 12)

	stepSamples := roundInt(float64(SampleRate) * 60.0 / float64(bpm) / 4.0)
	total := stepSamples * StepsPerSegment

	return MusicTime{
		SampleRate:   SampleRate,
		BPM:          bpm,
		RootFreq:     rootFreqHz(rootIdx),
		StepSamples:  stepSamples,
		StepsPerSeg:  StepsPerSegment,
		TotalSamples: total,
	}
}

func roundInt(v float64) int {
	if v < 0 {
		return -roundInt(-v)
	}
	return int(v + 0.5)
}
