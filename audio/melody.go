package audio

import "math"

// pentatonicRatios is the fixed ascending pentatonic scale committed to in
// DESIGN.md for the melody/FM note mapping: root * {1, 9/8, 5/4, 3/2, 5/3}.
var pentatonicRatios = [5]float64{1.0, 9.0 / 8.0, 5.0 / 4.0, 3.0 / 2.0, 5.0 / 3.0}

func scaleFreq(root float64, degree int) float64 {
	return root * pentatonicRatios[((degree%5)+5)%5]
}

// Melody is a sawtooth voice at a note frequency derived from the root and a
// step-based pentatonic scale degree; short per-note envelope.
type Melody struct {
	sampleRate int
	phase      float64
	phaseInc   float64
	remaining  int
	envelope   float64
	envCoeff   float64
}

const melodyDurationSec = 0.12
const melodyAmplitude = 0.07

func (m *Melody) Init(sampleRate int) {
	m.sampleRate = sampleRate
	m.remaining = 0
}

func (m *Melody) Trigger(aux int, mt voiceTiming) {
	if m.sampleRate == 0 {
		panic(ErrVoiceNotInitialized)
	}
	freq := scaleFreq(mt.RootFreq, aux)
	m.phase = 0
	m.phaseInc = freq / float64(m.sampleRate)
	m.remaining = int(melodyDurationSec * float64(m.sampleRate))
	m.envelope = 1.0
	m.envCoeff = math.Exp(math.Log(0.001) / float64(m.remaining))
}

func (m *Melody) Active() bool { return m.remaining > 0 }

// sawtooth returns a -1..1 ramp given a phase in [0, 1) (cycles, not radians).
func sawtooth(phaseCycles float64) float64 {
	frac := phaseCycles - math.Floor(phaseCycles)
	return 2*frac - 1
}

func (m *Melody) Process(L, R []float64, n int) {
	if m.remaining <= 0 {
		return
	}
	for i := 0; i < n && m.remaining > 0; i++ {
		out := clamp(melodyAmplitude*m.envelope*sawtooth(m.phase), -1, 1)
		L[i] += out
		R[i] += out
		m.phase += m.phaseInc
		m.envelope *= m.envCoeff
		m.remaining--
	}
}
