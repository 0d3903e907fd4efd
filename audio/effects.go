package audio

// Delay is a stereo tape delay: a fixed-length circular buffer per channel,
// feedback, and a wet/dry mix. Structure grounded on the pack's
// cbegin-mmlfm-go/internal/effects/delay.go circular-buffer delay,
// generalized to spec.md §4.5's fixed feedback/mix constants and minimum
// buffer length (at least 0.75s at 44.1kHz, per spec.md §3).
type Delay struct {
	bufL, bufR []float64
	pos        int
	feedback   float64
	wet        float64
	dry        float64
}

const delayFeedback = 0.45
const delayWet = 0.35
const delayDry = 0.65
const minDelayBufferSec = 0.75

// NewDelay sizes the circular buffer to delaySamples, but never shorter
// than minDelayBufferSec of sample_rate. The echo returns one full buffer
// length after the input, so a request shorter than the minimum yields a
// delay time of minDelayBufferSec, not delaySamples.
func NewDelay(sampleRate, delaySamples int) *Delay {
	minLen := int(minDelayBufferSec * float64(sampleRate))
	length := delaySamples
	if length < 1 {
		length = 1
	}
	if length < minLen {
		length = minLen
	}
	return &Delay{
		bufL:     make([]float64, length),
		bufR:     make([]float64, length),
		feedback: delayFeedback,
		wet:      delayWet,
		dry:      delayDry,
	}
}

// Process runs the delay in place over n stereo samples held in L/R.
func (d *Delay) Process(L, R []float64, n int) {
	bufLen := len(d.bufL)
	for i := 0; i < n; i++ {
		delayedL := d.bufL[d.pos]
		delayedR := d.bufR[d.pos]
		d.bufL[d.pos] = L[i] + delayedL*d.feedback
		d.bufR[d.pos] = R[i] + delayedR*d.feedback
		L[i] = L[i]*d.dry + delayedL*d.wet
		R[i] = R[i]*d.dry + delayedR*d.wet
		d.pos++
		if d.pos >= bufLen {
			d.pos = 0
		}
	}
}

// Limiter is a single-pole envelope-follower peak limiter: instant attack,
// slow release, hard ceiling. Structure grounded on the pack's
// cbegin-mmlfm-go/internal/effects/compressor.go envelope-follower shape,
// generalized to spec.md §4.5's fixed ceiling/release constants and
// spec.md §8's |y|<=1.0 guarantee.
type Limiter struct {
	envelope    float64
	ceiling     float64
	releaseCoef float64
}

const limiterCeiling = 0.98
const limiterRelease = 0.9995

func NewLimiter() *Limiter {
	return &Limiter{ceiling: limiterCeiling, releaseCoef: limiterRelease}
}

// Process applies the limiter in place over n stereo samples.
func (lm *Limiter) Process(L, R []float64, n int) {
	for i := 0; i < n; i++ {
		peak := absf(L[i])
		if r := absf(R[i]); r > peak {
			peak = r
		}
		if peak > lm.envelope {
			lm.envelope = peak // instant attack
		} else {
			lm.envelope = lm.envelope*lm.releaseCoef + peak*(1-lm.releaseCoef)
		}
		gain := 1.0
		if lm.envelope > lm.ceiling {
			gain = lm.ceiling / lm.envelope
		}
		L[i] = clamp(L[i]*gain, -1, 1)
		R[i] = clamp(R[i]*gain, -1, 1)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
