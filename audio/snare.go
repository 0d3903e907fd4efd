package audio

import "math"

// Snare mixes a short band-limited noise burst with a 180 Hz tonal
// component; envelope lasts about 0.2 seconds.
type Snare struct {
	sampleRate int
	noise      *fastNoise
	prevNoise  float64
	tonePhase  float64
	toneInc    float64
	remaining  int
	envelope   float64
	envCoeff   float64
}

const snareToneFreq = 180.0
const snareDurationSec = 0.2
const snareAmplitude = 0.6

func (s *Snare) Init(sampleRate int) {
	s.sampleRate = sampleRate
	s.noise = newFastNoise(0xA5A5A5A5)
	s.remaining = 0
}

func (s *Snare) Trigger(aux int, mt voiceTiming) {
	if s.sampleRate == 0 {
		panic(ErrVoiceNotInitialized)
	}
	s.tonePhase = 0
	s.toneInc = 2 * pi * snareToneFreq / float64(s.sampleRate)
	s.remaining = int(snareDurationSec * float64(s.sampleRate))
	s.envelope = 1.0
	s.envCoeff = math.Exp(math.Log(0.001) / float64(s.remaining))
}

func (s *Snare) Active() bool { return s.remaining > 0 }

func (s *Snare) Process(L, R []float64, n int) {
	if s.remaining <= 0 {
		return
	}
	for i := 0; i < n && s.remaining > 0; i++ {
		raw := s.noise.next()
		// band-limit: a one-pole low-pass on the raw LCG noise removes the
		// harshest high end before mixing with the tonal component.
		band := (raw + s.prevNoise) * 0.5
		s.prevNoise = raw
		tone := sinApprox(wrapPi(s.tonePhase))
		out := clamp(s.envelope*snareAmplitude*(0.6*band+0.4*tone), -1, 1)
		L[i] += out
		R[i] += out
		s.tonePhase += s.toneInc
		s.envelope *= s.envCoeff
		s.remaining--
	}
}
