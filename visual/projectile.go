package visual

import "math"

// ProjectileCap bounds the projectile pool; spec.md requires a fixed
// capacity but does not state a number (only particles=256, bass hits=96
// are given), so this repository commits to 64 — generously above the
// steady-state population the firing-rate formula below can sustain.
const ProjectileCap = 64

// projectileGlyphs is the fixed nine-character set of spec.md §4.11.
var projectileGlyphs = [...]rune{'o', 'x', '-', '0', '*', '+', '>', '=', '~'}

// Projectile is a single ship-fired shot.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Life   int

	PoolIndex int
	Active    bool
}

type ProjectilePool struct {
	Pool        []*Projectile
	ActiveCount int
	fireCounter int
	spawnIndex  int
}

func NewProjectilePool() *ProjectilePool {
	p := &ProjectilePool{Pool: make([]*Projectile, ProjectileCap)}
	for i := range p.Pool {
		p.Pool[i] = &Projectile{PoolIndex: i}
	}
	return p
}

func (p *ProjectilePool) Acquire() *Projectile {
	if p.ActiveCount >= len(p.Pool) {
		return nil
	}
	pr := p.Pool[p.ActiveCount]
	pr.PoolIndex = p.ActiveCount
	pr.Active = true
	p.ActiveCount++
	return pr
}

func (p *ProjectilePool) Release(index int) {
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

// FireInterval is spec.md §4.11's clip(3, 20-floor(L*17), 20) firing-rate
// formula, in frames between shots.
func FireInterval(level float64) int {
	interval := 20 - int(level*17)
	if interval < 3 {
		interval = 3
	}
	if interval > 20 {
		interval = 20
	}
	return interval
}

// Tick advances the fire counter and, when it reaches the interval for the
// current level, spawns a projectile from (x,y) toward (targetX,targetY).
func (p *ProjectilePool) Tick(x, y, targetX, targetY, level float64) {
	p.fireCounter++
	if p.fireCounter < FireInterval(level) {
		return
	}
	p.fireCounter = 0

	pr := p.Acquire()
	if pr == nil {
		return
	}
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	const speed = 6.0
	pr.X, pr.Y = x, y
	pr.VX = dx / dist * speed
	pr.VY = dy / dist * speed
	pr.Glyph = projectileGlyphs[p.spawnIndex%len(projectileGlyphs)]
	p.spawnIndex++
	pr.Life = 120
}

// Update moves every active projectile and removes any that expire or
// collide with the boss's bounding disc (collision removes the projectile,
// never the boss, per spec.md §4.11).
func (p *ProjectilePool) Update(bossCX, bossCY, bossR float64) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		pr := p.Pool[i]
		pr.X += pr.VX
		pr.Y += pr.VY
		pr.Life--

		dx := pr.X - bossCX
		dy := pr.Y - bossCY
		if dx*dx+dy*dy <= bossR*bossR {
			p.Release(i)
			continue
		}
		if pr.Life <= 0 {
			p.Release(i)
		}
	}
}

func (p *ProjectilePool) Draw(fb *Framebuffer, hue float64) {
	color := HSV(hue, 0.5, 1.0)
	for i := 0; i < p.ActiveCount; i++ {
		pr := p.Pool[i]
		DrawGlyph(fb, int(pr.X), int(pr.Y), pr.Glyph, color)
	}
}
