package audio

import "math"

// Hat is high-frequency noise with a fast decay (about 0.05 seconds). The
// high-pass difference of consecutive LCG noise samples removes the low
// end, leaving the bright, short "tick" spec.md describes.
type Hat struct {
	sampleRate int
	noise      *fastNoise
	prevNoise  float64
	remaining  int
	envelope   float64
	envCoeff   float64
}

const hatDurationSec = 0.05
const hatAmplitude = 0.35

func (h *Hat) Init(sampleRate int) {
	h.sampleRate = sampleRate
	h.noise = newFastNoise(0x1234ABCD)
	h.remaining = 0
}

func (h *Hat) Trigger(aux int, mt voiceTiming) {
	if h.sampleRate == 0 {
		panic(ErrVoiceNotInitialized)
	}
	h.remaining = int(hatDurationSec * float64(h.sampleRate))
	h.envelope = 1.0
	h.envCoeff = math.Exp(math.Log(0.001) / float64(h.remaining))
}

func (h *Hat) Active() bool { return h.remaining > 0 }

func (h *Hat) Process(L, R []float64, n int) {
	if h.remaining <= 0 {
		return
	}
	for i := 0; i < n && h.remaining > 0; i++ {
		raw := h.noise.next()
		out := clamp(h.envelope*hatAmplitude*(raw-h.prevNoise), -1, 1)
		h.prevNoise = raw
		L[i] += out
		R[i] += out
		h.envelope *= h.envCoeff
		h.remaining--
	}
}
