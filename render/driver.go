// Package render drives the per-frame pipeline: querying audio signals,
// advancing procedural scenery and sprite pools, and emitting the
// resulting framebuffer.
package render

import (
	"fmt"
	"math"

	"github.com/halvorsen/seedforge/analyzer"
	"github.com/halvorsen/seedforge/visual"
)

// Driver owns every piece of per-segment renderer state: the fixed
// terrain/ship/boss layout, the sprite pools, and the audio signal reader.
// It is never shared across workers (spec.md §5): a slice-mode invocation
// constructs its own Driver and replays from frame 0 so its smoothed-level
// state matches a full run bit for bit, even though it only emits the
// requested subrange.
type Driver struct {
	seed uint32

	fb      *visual.Framebuffer
	terrain visual.Terrain
	ship    visual.Ship
	boss    visual.Boss

	particles   *visual.ParticlePool
	bassHits    *visual.BassHitPool
	projectiles *visual.ProjectilePool

	signals *analyzer.Signals

	stepSamples  int
	sampleRate   int
	framesSinceBeat int
	bassHitShapeCycle int
	lastStep     int
}

// NewDriver builds a Driver for one segment. src supplies per-frame audio
// signals (either sidecar-backed or WAV-analysis fallback); stepSamples and
// sampleRate are needed to map frames to the saw-step schedule.
func NewDriver(seed uint32, src analyzer.Source, stepSamples, sampleRate int) *Driver {
	return &Driver{
		seed:            seed,
		fb:              visual.NewFramebuffer(),
		terrain:         visual.NewTerrain(seed),
		ship:            visual.NewShip(seed),
		boss:            visual.NewBoss(seed),
		particles:       visual.NewParticlePool(),
		bassHits:        visual.NewBassHitPool(),
		projectiles:     visual.NewProjectilePool(),
		signals:         analyzer.NewSignals(src),
		stepSamples:     stepSamples,
		sampleRate:      sampleRate,
		framesSinceBeat: -1,
		lastStep:        -1,
	}
}

// TotalFrames returns the number of frames this segment's audio yields.
func (d *Driver) TotalFrames() int { return d.signals.TotalFrames() }

// FrameWriter receives one fully rendered frame at a time, in order.
type FrameWriter interface {
	WriteFrame(index int, fb *visual.Framebuffer) error
}

// Run simulates every frame from 0 through TotalFrames-1 in order (the
// sprite pools and smoothed level are stateful and cannot start mid-
// stream), writing only frames in the half-open [start, end) range to w.
// end may be TotalFrames() to mean "through the last frame".
func (d *Driver) Run(w FrameWriter, start, end int) error {
	total := d.TotalFrames()
	if start < 0 || start > total {
		return fmt.Errorf("render: range start %d out of [0,%d]", start, total)
	}
	if end > total {
		end = total
	}

	for frame := 0; frame < end; frame++ {
		sig, ok := d.signals.Next()
		if !ok {
			break
		}
		d.step(frame, sig)

		if frame >= start {
			if err := w.WriteFrame(frame, d.fb); err != nil {
				return fmt.Errorf("render: write frame %d: %w", frame, err)
			}
		}
	}
	return nil
}

// step runs the fixed eight-stage per-frame algorithm of spec.md §4.13.
func (d *Driver) step(frame int, sig analyzer.Frame) {
	d.fb.Clear(visual.PackARGB(255, 0, 0, 0))

	d.terrain.DrawBottom(d.fb, frame, sig.Level)
	d.terrain.DrawTop(d.fb, frame, sig.Level, sig.HueBase)

	if sig.BeatNow {
		d.framesSinceBeat = 0
		d.spawnOnBeat(sig)
	} else if d.framesSinceBeat >= 0 {
		d.framesSinceBeat++
	}

	d.updateStepTriggeredHits(frame, sig)

	d.particles.Update()
	d.bassHits.Update()
	shipX, shipY := d.shipPosition(frame, sig.Level)
	bossCX, bossCY, bossR := d.boss.BoundingDisc()
	d.projectiles.Tick(shipX, shipY-20, bossCX, bossCY, sig.Level)
	d.projectiles.Update(bossCX, bossCY, bossR)

	d.particles.Draw(d.fb, '*')
	d.bassHits.Draw(d.fb, sig.HueBase)
	d.projectiles.Draw(d.fb, sig.HueBase+0.5)

	d.ship.Draw(d.fb, frame, sig.Level)
	d.boss.Draw(d.fb, frame, sig.Level)

	intensity := visual.Intensity(frame, sig.Level, d.framesSinceBeat)
	visual.Apply(d.fb, d.seed, frame, intensity)
}

func (d *Driver) shipPosition(frame int, level float64) (float64, float64) {
	const baseX = visual.Width / 4
	const baseY = visual.Height / 2
	sway := 40.0 * sin(float64(frame)*0.05)
	bob := 30.0 * sin(float64(frame)*0.07)
	dodge := 35.0 * level
	return baseX + sway + dodge, baseY + bob
}

// spawnOnBeat fires a particle explosion at the ship's current position,
// the concrete "explosion(s)" spec.md §4.13 step 4 calls for without
// naming a location.
func (d *Driver) spawnOnBeat(sig analyzer.Frame) {
	x, y := d.shipPosition(sig.Index, sig.Level)
	chaos := d.boss.Formation == chaosFormation()
	visual.SpawnExplosion(d.particles, x, y, sig.Level, sig.HueBase, chaos)
}

// updateStepTriggeredHits spawns a bass-hit shape when the current sample
// position crosses a saw step boundary (spec.md GLOSSARY "Saw step").
func (d *Driver) updateStepTriggeredHits(frame int, sig analyzer.Frame) {
	if d.stepSamples <= 0 || d.sampleRate <= 0 {
		return
	}
	sampleAt := int(float64(frame) * float64(d.sampleRate) / 60.0)
	step := sampleAt / d.stepSamples
	if step == d.lastStep {
		return
	}
	d.lastStep = step
	if !visual.IsSawStep(step % 32) {
		return
	}
	shapes := [...]visual.ShapeKind{visual.ShapeTriangle, visual.ShapeDiamond, visual.ShapeHexagon, visual.ShapeStar, visual.ShapeSquare}
	shape := shapes[d.bassHitShapeCycle%len(shapes)]
	d.bassHitShapeCycle++
	visual.TriggerBassHit(d.bassHits, visual.Width/2, visual.Height-100, sig.BassEnergy+0.1, shape)
}

func chaosFormation() visual.BossFormation { return visual.FormationChaos }

func sin(x float64) float64 {
	return math.Sin(x)
}
