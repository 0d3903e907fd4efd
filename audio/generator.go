package audio

import (
	"fmt"

	"github.com/halvorsen/seedforge/common"
)

// maxBlockSamples bounds how much the generator processes between event and
// step-boundary checks. Blocks never cross a step boundary (spec.md §4.6).
const maxBlockSamples = 1024

// Generator drives the event queue and voices, mixes the drum and synth
// buses, runs the tape delay and peak limiter, and emits the final stereo
// segment.
type Generator struct {
	mt    common.MusicTime
	queue *EventQueue

	kick   Kick
	snare  Snare
	hat    Hat
	melody Melody
	midFM  MidFM
	bassFM BassFM

	delay           *Delay
	melodyDelay     *Delay
	melodyOnlyDelay bool
	limiter         *Limiter

	posInStep int
	step      int

	// scratch buses, reused across blocks
	drumL, drumR []float64
	synthL, synthR []float64
	melL, melR     []float64
}

// NewGenerator builds a Generator for one segment derived from seed.
// melodyOnlyDelay selects the runtime-switchable routing of spec.md §4.5:
// when true, only the melody voice passes through the delay on its own
// sub-bus; when false, the whole synth bus (melody + both FM voices) does.
func NewGenerator(seed uint32, melodyOnlyDelay bool) *Generator {
	mt := common.NewMusicTime(seed)
	g := &Generator{
		mt:              mt,
		queue:           BuildEventQueue(mt.StepSamples, mt.StepsPerSeg),
		melodyOnlyDelay: melodyOnlyDelay,
		drumL:           make([]float64, maxBlockSamples),
		drumR:           make([]float64, maxBlockSamples),
		synthL:          make([]float64, maxBlockSamples),
		synthR:          make([]float64, maxBlockSamples),
		melL:            make([]float64, maxBlockSamples),
		melR:            make([]float64, maxBlockSamples),
	}

	// Every voice is initialized here, unconditionally, at construction —
	// spec.md §4.6/§9: a voice whose sample_rate was never set panics with
	// ErrVoiceNotInitialized at trigger time.
	g.kick.Init(mt.SampleRate)
	g.snare.Init(mt.SampleRate)
	g.hat.Init(mt.SampleRate)
	g.melody.Init(mt.SampleRate)
	g.midFM.Init(mt.SampleRate)
	g.bassFM.Init(mt.SampleRate)

	// The requested delay is an eighth note (two 16th steps). NewDelay raises
	// any request below its 0.75s minimum buffer to that minimum, and the echo
	// returns one full buffer length later, so for every bpm in [70,180] the
	// delay time is 0.75s; it does not follow the tempo.
	delaySamples := mt.StepSamples * 2
	g.delay = NewDelay(mt.SampleRate, delaySamples)
	g.melodyDelay = NewDelay(mt.SampleRate, delaySamples)
	g.limiter = NewLimiter()

	return g
}

// MusicTime returns the derived timing, used by the timeline exporter and
// the CLI.
func (g *Generator) MusicTime() common.MusicTime { return g.mt }

// Queue exposes the built event schedule for the timeline exporter.
func (g *Generator) Queue() *EventQueue { return g.queue }

func (g *Generator) timing() voiceTiming {
	return voiceTiming{SampleRate: g.mt.SampleRate, RootFreq: g.mt.RootFreq}
}

func (g *Generator) fire(events []Event) {
	t := g.timing()
	for _, e := range events {
		switch e.Kind {
		case KindKick:
			g.kick.Trigger(e.Aux, t)
		case KindSnare:
			g.snare.Trigger(e.Aux, t)
		case KindHat:
			g.hat.Trigger(e.Aux, t)
		case KindMelody:
			g.melody.Trigger(e.Aux, t)
		case KindMidFM:
			g.midFM.Trigger(e.Aux, t)
		case KindBassFM:
			g.bassFM.Trigger(e.Aux, t)
		}
	}
}

// Generate renders the full segment and returns the left/right channels,
// each exactly mt.TotalSamples long.
func (g *Generator) Generate() ([]float64, []float64, error) {
	if g.mt.SampleRate == 0 {
		return nil, nil, fmt.Errorf("generate: %w", ErrVoiceNotInitialized)
	}
	total := g.mt.TotalSamples
	outL := make([]float64, total)
	outR := make([]float64, total)

	g.fire(g.queue.PopDue(0))

	pos := 0
	for pos < total {
		remainInStep := g.mt.StepSamples - g.posInStep
		blockLen := remainInStep
		if blockLen > maxBlockSamples {
			blockLen = maxBlockSamples
		}
		if blockLen > total-pos {
			blockLen = total - pos
		}
		if blockLen <= 0 {
			// Defensive: never spin without progress.
			blockLen = 1
		}

		if pos > 0 {
			g.fire(g.queue.PopDue(pos))
		}

		g.processBlock(outL[pos:pos+blockLen], outR[pos:pos+blockLen], blockLen)

		pos += blockLen
		g.posInStep += blockLen
		if g.posInStep >= g.mt.StepSamples {
			g.posInStep -= g.mt.StepSamples
			g.step++
		}
	}

	return outL, outR, nil
}

func zero(bufs ...[]float64) {
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
	}
}

func (g *Generator) processBlock(outL, outR []float64, n int) {
	zero(g.drumL[:n], g.drumR[:n], g.synthL[:n], g.synthR[:n], g.melL[:n], g.melR[:n])

	g.kick.Process(g.drumL[:n], g.drumR[:n], n)
	g.snare.Process(g.drumL[:n], g.drumR[:n], n)
	g.hat.Process(g.drumL[:n], g.drumR[:n], n)

	if g.melodyOnlyDelay {
		g.melody.Process(g.melL[:n], g.melR[:n], n)
		g.midFM.Process(g.synthL[:n], g.synthR[:n], n)
		g.bassFM.Process(g.synthL[:n], g.synthR[:n], n)
		g.melodyDelay.Process(g.melL[:n], g.melR[:n], n)
	} else {
		g.melody.Process(g.synthL[:n], g.synthR[:n], n)
		g.midFM.Process(g.synthL[:n], g.synthR[:n], n)
		g.bassFM.Process(g.synthL[:n], g.synthR[:n], n)
		g.delay.Process(g.synthL[:n], g.synthR[:n], n)
	}

	for i := 0; i < n; i++ {
		outL[i] = g.drumL[i] + g.synthL[i] + g.melL[i]
		outR[i] = g.drumR[i] + g.synthR[i] + g.melR[i]
	}

	g.limiter.Process(outL, outR, n)
}

// ConcatSegments supplements the core with the external batch driver's
// repetition behavior (original_source/batch_steps.py): it renders the same
// seed's segment n times independently and concatenates the results. Each
// render is a fresh, fully deterministic Generate() call, so concatenation
// is trivially byte-identical across runs; spec.md §8's seam-silence
// property holds because every segment starts and ends its voices from the
// same deterministic initial state.
func ConcatSegments(seed uint32, n int, melodyOnlyDelay bool) ([]float64, []float64, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("concat segments: n must be positive, got %d", n)
	}
	var left, right []float64
	for i := 0; i < n; i++ {
		g := NewGenerator(seed, melodyOnlyDelay)
		l, r, err := g.Generate()
		if err != nil {
			return nil, nil, err
		}
		left = append(left, l...)
		right = append(right, r...)
	}
	return left, right, nil
}
