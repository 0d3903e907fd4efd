package audio

import "math"

// fmParams fixes the per-voice FM configuration spec.md §4.4 specifies.
type fmParams struct {
	carrierMul  float64
	modRatio    float64
	modIndex    float64
	durationSec float64
	amplitude   float64
	registerMul float64 // applied to root before the scale lookup
}

var midFMParams = fmParams{
	carrierMul:  2.0,
	modRatio:    0.5,
	modIndex:    2.5,
	durationSec: 0.16,
	amplitude:   0.25,
	registerMul: 1.0,
}

var bassFMParams = fmParams{
	carrierMul:  1.0,
	modRatio:    1.5,
	modIndex:    8.0,
	durationSec: 1.25,
	amplitude:   0.45,
	registerMul: 0.5,
}

// fmVoice is the shared two-operator FM engine backing both the mid and
// bass FM voices; only the params differ between them.
type fmVoice struct {
	params     fmParams
	sampleRate int
	carrierPh  float64
	carrierInc float64
	modPh      float64
	modInc     float64
	remaining  int
	envelope   float64
	envCoeff   float64
}

func (v *fmVoice) init(sampleRate int, p fmParams) {
	v.params = p
	v.sampleRate = sampleRate
	v.remaining = 0
}

// trigger recomputes remaining (and thus the voice length) from the voice's
// own sampleRate on every call, so no stale length from a previous trigger
// survives; triggering with an uninitialized sampleRate panics with
// ErrVoiceNotInitialized.
func (v *fmVoice) trigger(aux int, mt voiceTiming) {
	if v.sampleRate == 0 {
		panic(ErrVoiceNotInitialized)
	}
	note := scaleFreq(mt.RootFreq*v.params.registerMul, aux)
	carrierFreq := note * v.params.carrierMul
	modFreq := carrierFreq * v.params.modRatio

	v.carrierPh = 0
	v.modPh = 0
	v.carrierInc = 2 * pi * carrierFreq / float64(v.sampleRate)
	v.modInc = 2 * pi * modFreq / float64(v.sampleRate)
	v.remaining = int(v.params.durationSec * float64(v.sampleRate))
	v.envelope = 1.0
	v.envCoeff = math.Exp(math.Log(0.001) / float64(v.remaining))
}

func (v *fmVoice) active() bool { return v.remaining > 0 }

func (v *fmVoice) process(L, R []float64, n int) {
	if v.remaining <= 0 {
		return
	}
	for i := 0; i < n && v.remaining > 0; i++ {
		modOut := clamp(v.params.modIndex*sinApprox(wrapPi(v.modPh)), -pi, pi)
		out := clamp(sinApprox(wrapPi(v.carrierPh+modOut)), -1, 1)
		out = clamp(v.params.amplitude*v.envelope*out, -1, 1)
		L[i] += out
		R[i] += out
		v.carrierPh += v.carrierInc
		v.modPh += v.modInc
		v.envelope *= v.envCoeff
		v.remaining--
	}
}

// MidFM is the sine-carrier/sine-modulator voice around 2x note frequency.
type MidFM struct{ fmVoice }

func (m *MidFM) Init(sampleRate int)                    { m.init(sampleRate, midFMParams) }
func (m *MidFM) Trigger(aux int, mt voiceTiming)         { m.trigger(aux, mt) }
func (m *MidFM) Active() bool                            { return m.active() }
func (m *MidFM) Process(L, R []float64, n int)           { m.process(L, R, n) }

// BassFM is the lower-register, higher-index, longer-duration FM voice.
type BassFM struct{ fmVoice }

func (b *BassFM) Init(sampleRate int)                    { b.init(sampleRate, bassFMParams) }
func (b *BassFM) Trigger(aux int, mt voiceTiming)        { b.trigger(aux, mt) }
func (b *BassFM) Active() bool                            { return b.active() }
func (b *BassFM) Process(L, R []float64, n int)           { b.process(L, R, n) }
