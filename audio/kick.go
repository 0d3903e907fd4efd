package audio

import "math"

// Kick is a one-pole resonant sinusoid at 70 Hz (not 100 Hz — the lower
// fundamental avoids an audible subharmonic) with an exponential amplitude
// envelope lasting about 0.5 seconds.
type Kick struct {
	sampleRate int
	phase      float64
	phaseInc   float64
	remaining  int
	amplitude  float64
	envelope   float64
	envCoeff   float64
}

const kickFreq = 70.0
const kickAmplitude = 0.9
const kickDurationSec = 0.5

func (k *Kick) Init(sampleRate int) {
	k.sampleRate = sampleRate
	k.remaining = 0
}

func (k *Kick) Trigger(aux int, mt voiceTiming) {
	if k.sampleRate == 0 {
		panic(ErrVoiceNotInitialized)
	}
	k.phase = 0
	k.phaseInc = 2 * pi * kickFreq / float64(k.sampleRate)
	k.remaining = int(kickDurationSec * float64(k.sampleRate))
	k.amplitude = kickAmplitude
	k.envelope = 1.0
	k.envCoeff = math.Exp(math.Log(0.001) / float64(k.remaining))
}

func (k *Kick) Active() bool { return k.remaining > 0 }

func (k *Kick) Process(L, R []float64, n int) {
	if k.remaining <= 0 {
		return
	}
	for i := 0; i < n && k.remaining > 0; i++ {
		out := clamp(k.amplitude*k.envelope*sinApprox(wrapPi(k.phase)), -1, 1)
		L[i] += out
		R[i] += out
		k.phase += k.phaseInc
		k.envelope *= k.envCoeff
		k.remaining--
	}
}
