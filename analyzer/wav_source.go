package analyzer

import (
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// rmsWindow is the fixed analysis window spec.md §4.13 specifies for
// fallback beat detection: 1024 samples centered on the frame's nearest
// audio sample.
const rmsWindow = 1024

// beatRiseThreshold and beatMinGapFrames are the onset-detection constants
// of spec.md §4.13: an onset fires when the current window's RMS exceeds
// the previous window's by at least 5%, and at least 3 frames have passed
// since the last detected beat.
const beatRiseThreshold = 1.05
const beatMinGapFrames = 3

// WAVSource derives frame signals from the raw waveform when no sidecar is
// present (spec.md §2's "Audio Analyzer (fallback)"). It decodes the whole
// file up front with the pack's WAV decoder (github.com/gopxl/beep/wav) and
// precomputes one entry per video frame.
type WAVSource struct {
	level  []float64
	beat   []bool
	bass   []float64
	treble []float64
}

// NewWAVSource reads a WAV file previously written by audio.WriteWAVFile.
func NewWAVSource(r io.Reader) (*WAVSource, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("analyzer: decode wav: %w", err)
	}
	defer streamer.Close()

	mono, err := drainMono(streamer)
	if err != nil {
		return nil, fmt.Errorf("analyzer: read wav samples: %w", err)
	}

	bassBand := lowPass(mono, 0.06)
	trebleBand := highPass(mono, 0.25)

	total := TotalFrames(len(mono), int(format.SampleRate))
	frameLen := FrameSamples(int(format.SampleRate))

	src := &WAVSource{
		level:  make([]float64, total),
		beat:   make([]bool, total),
		bass:   make([]float64, total),
		treble: make([]float64, total),
	}

	prevRMS := 0.0
	lastBeat := -beatMinGapFrames
	for f := 0; f < total; f++ {
		center := int(float64(f) * frameLen)
		lo := center - rmsWindow/2
		hi := center + rmsWindow/2
		r := rms(mono, lo, hi)
		src.level[f] = clampUnit(r * 4) // empirical gain so typical mixes reach [0,1]
		src.bass[f] = clampUnit(rms(bassBand, lo, hi) * 4)
		src.treble[f] = clampUnit(rms(trebleBand, lo, hi) * 4)

		if f > 0 && prevRMS > 0 && r > prevRMS*beatRiseThreshold && f-lastBeat >= beatMinGapFrames {
			src.beat[f] = true
			lastBeat = f
		}
		prevRMS = r
	}

	return src, nil
}

func (s *WAVSource) TotalFrames() int { return len(s.level) }

func (s *WAVSource) RawLevel(frame int) float64 {
	if frame < 0 || frame >= len(s.level) {
		return 0
	}
	return s.level[frame]
}

func (s *WAVSource) BeatNow(frame int) bool {
	if frame < 0 || frame >= len(s.beat) {
		return false
	}
	return s.beat[frame]
}

func (s *WAVSource) BassEnergy(frame int) float64 {
	if frame < 0 || frame >= len(s.bass) {
		return 0
	}
	return s.bass[frame]
}

func (s *WAVSource) TrebleEnergy(frame int) float64 {
	if frame < 0 || frame >= len(s.treble) {
		return 0
	}
	return s.treble[frame]
}

func (s *WAVSource) HueBase(frame int) float64 {
	h := float64(frame) * 0.0015
	h -= float64(int(h))
	return h
}

// drainMono streams the whole file into a single averaged-channel slice.
func drainMono(s beep.StreamSeekCloser) ([]float64, error) {
	buf := make([][2]float64, 4096)
	var mono []float64
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			mono = append(mono, (buf[i][0]+buf[i][1])/2)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return mono, nil
}

func rms(samples []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(samples) {
		hi = len(samples)
	}
	if hi <= lo {
		return 0
	}
	var sum float64
	for i := lo; i < hi; i++ {
		sum += samples[i] * samples[i]
	}
	return math.Sqrt(sum / float64(hi-lo))
}

// lowPass and highPass are simple one-pole filters used only to split the
// waveform into bass/treble bands for the fallback analyzer; alpha controls
// the cutoff (smaller alpha for lowPass = lower cutoff).
func lowPass(in []float64, alpha float64) []float64 {
	out := make([]float64, len(in))
	if len(in) == 0 {
		return out
	}
	acc := in[0]
	out[0] = acc
	for i := 1; i < len(in); i++ {
		acc += alpha * (in[i] - acc)
		out[i] = acc
	}
	return out
}

func highPass(in []float64, alpha float64) []float64 {
	out := make([]float64, len(in))
	if len(in) == 0 {
		return out
	}
	prevIn := in[0]
	prevOut := 0.0
	out[0] = 0
	for i := 1; i < len(in); i++ {
		cur := alpha * (prevOut + in[i] - prevIn)
		out[i] = cur
		prevOut = cur
		prevIn = in[i]
	}
	return out
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
