package visual

import "math"

// ParticleCap is the fixed particle pool capacity (spec.md §4.12).
const ParticleCap = 256

// Particle is one explosion-spark point. PoolIndex supports swap-and-pop
// release, grounded on the pack's BulletPool pattern.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Hue    float64

	PoolIndex int
	Active    bool
}

// ParticleGravity is the slight downward acceleration applied every update.
const ParticleGravity = 0.02

// ParticlePool manages a fixed-capacity set of reusable particles with
// swap-and-pop release, same shape as the pack's BulletPool.
type ParticlePool struct {
	Pool        []*Particle
	ActiveCount int
}

func NewParticlePool() *ParticlePool {
	p := &ParticlePool{Pool: make([]*Particle, ParticleCap)}
	for i := range p.Pool {
		p.Pool[i] = &Particle{PoolIndex: i}
	}
	return p
}

// Acquire returns a free particle, or nil when the pool is saturated —
// spawns beyond capacity are silently dropped, not an error (spec.md §8).
func (p *ParticlePool) Acquire() *Particle {
	if p.ActiveCount >= len(p.Pool) {
		return nil
	}
	pt := p.Pool[p.ActiveCount]
	pt.PoolIndex = p.ActiveCount
	pt.Active = true
	p.ActiveCount++
	return pt
}

func (p *ParticlePool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	last := p.ActiveCount - 1
	if index != last {
		p.Pool[index], p.Pool[last] = p.Pool[last], p.Pool[index]
		p.Pool[index].PoolIndex = index
	}
	p.Pool[last].Active = false
	p.ActiveCount--
}

// Update advances every active particle one frame and releases any whose
// life has expired, iterating in reverse so release-by-swap never skips an
// entry (grounded on the pack's loop.go release-during-iterate pattern).
func (p *ParticlePool) Update() {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		pt := p.Pool[i]
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += ParticleGravity
		pt.Life--
		if pt.Life <= 0 {
			p.Release(i)
		}
	}
}

// Draw renders every active particle as one glyph colored by its hue.
func (p *ParticlePool) Draw(fb *Framebuffer, glyph rune) {
	for i := 0; i < p.ActiveCount; i++ {
		pt := p.Pool[i]
		color := HSV(pt.Hue, 0.8, 1.0)
		DrawGlyph(fb, int(pt.X), int(pt.Y), glyph, color)
	}
}

// SpawnExplosion acquires N = 5 + floor(L*15) particles at (x,y), where L is
// the current smoothed audio level (spec.md §4.12). chaosMode additionally
// spawns 8-spoke spiral bursts.
func SpawnExplosion(pool *ParticlePool, x, y, level float64, hue float64, chaosMode bool) {
	n := 5 + int(level*15)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * 3.14159265
		speed := 1.5 + level*2
		spawnParticle(pool, x, y, angle, speed, hue)
	}
	if chaosMode {
		for spoke := 0; spoke < 8; spoke++ {
			angle := float64(spoke) / 8 * 2 * 3.14159265
			spawnParticle(pool, x, y, angle, 2.5, hue+0.1*float64(spoke))
		}
	}
}

func spawnParticle(pool *ParticlePool, x, y, angle, speed, hue float64) {
	pt := pool.Acquire()
	if pt == nil {
		return
	}
	pt.X, pt.Y = x, y
	pt.VX = math.Cos(angle) * speed
	pt.VY = math.Sin(angle) * speed
	pt.Life = 30
	pt.Hue = hue
}
