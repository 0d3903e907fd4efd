// Package analyzer supplies the frame driver with per-frame audio-reactive
// signals, either read exactly from the timeline sidecar or, when no
// sidecar is available, derived from the raw WAV waveform (spec.md §4.13,
// §2's "Audio Analyzer (fallback)").
package analyzer

// Source is implemented by both the sidecar-backed reader and the WAV
// fallback analyzer. It reports unsmoothed, per-frame raw signals; the
// frame driver owns the L(f) = 0.8*L(f-1) + 0.2*L_raw(f) smoothing and the
// beat-explosion timer, since those are the same regardless of source.
type Source interface {
	TotalFrames() int
	RawLevel(frame int) float64
	BeatNow(frame int) bool
	BassEnergy(frame int) float64
	TrebleEnergy(frame int) float64
	HueBase(frame int) float64
}

// FrameSamples returns how many audio samples correspond to one video
// frame at 60fps and the given sample rate (not necessarily integral; the
// analyzer windows around the nearest sample).
func FrameSamples(sampleRate int) float64 {
	return float64(sampleRate) / 60.0
}

// TotalFrames computes floor(totalSamples/sampleRate * 60), the duration
// truncation spec.md §4.13/§6 requires (never rounds up to a trailing
// frame beyond the audio).
func TotalFrames(totalSamples, sampleRate int) int {
	return int(float64(totalSamples) / float64(sampleRate) * 60.0)
}
