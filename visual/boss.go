package visual

import (
	"math"

	"github.com/halvorsen/seedforge/common"
)

// BossFormation enumerates the eight layout algorithms of spec.md §4.11.
type BossFormation int

const (
	FormationStarBurst BossFormation = iota
	FormationCluster
	FormationWing
	FormationSpiral
	FormationGrid
	FormationChaos
	FormationLayered
	FormationPulsing
)

// BossComponent is one shape in the boss formation.
type BossComponent struct {
	Shape    ShapeKind
	Size     float64
	Hue      float64
	Sat      float64
	Val      float64
	Rotation int
	OffsetX, OffsetY float64
}

// BossComponentCap bounds the component pool: spec.md's formula (3 +
// next()%10) tops out at 12.
const BossComponentCap = 12

// Boss holds one formation's fixed layout, derived once at segment start
// from the boss PRNG stream.
type Boss struct {
	Formation  BossFormation
	Components []BossComponent
	CenterX, CenterY float64
	Radius     float64
}

// NewBoss derives a formation and its components from the boss PRNG.
func NewBoss(seed uint32) Boss {
	prng := common.NewStream(seed, common.MagicBoss)
	shapePRNG := common.NewStream(seed, common.MagicShape)

	formation := BossFormation(prng.Intn(8))
	n := 3 + prng.Intn(10)
	if n > BossComponentCap {
		n = BossComponentCap
	}

	b := Boss{
		Formation: formation,
		CenterX:   Width / 2,
		CenterY:   140,
		Radius:    120,
	}

	comps := make([]BossComponent, n)
	for i := range comps {
		comps[i] = BossComponent{
			Shape:    ShapeKind(shapePRNG.Intn(5)),
			Size:     prng.FloatRange(15, 40),
			Hue:      prng.Float64(),
			Sat:      prng.FloatRange(0.6, 1.0),
			Val:      prng.FloatRange(0.6, 1.0),
			Rotation: prng.Intn(256),
		}
		layoutComponent(&comps[i], formation, i, n)
	}
	b.Components = comps
	return b
}

// layoutComponent positions one component according to the formation's
// layout rule (spec.md §4.11, items 1-8). Index i is the dedicated loop
// counter; it is never reused for anything else in this function, per the
// register-discipline note carried from spec.md §9/§4.11.
func layoutComponent(c *BossComponent, formation BossFormation, i, n int) {
	switch formation {
	case FormationStarBurst:
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := 20 + float64(i)*10
		c.OffsetX = math.Cos(angle) * radius
		c.OffsetY = math.Sin(angle) * radius
	case FormationCluster:
		angle := float64(i) * 2.4
		radius := float64((i*37)%120) + 10
		c.OffsetX = math.Cos(angle) * radius
		c.OffsetY = math.Sin(angle) * radius
	case FormationWing:
		side := 1.0
		if i%2 == 0 {
			side = -1.0
		}
		arm := float64(i / 2)
		c.OffsetX = side * (20 + arm*25)
		c.OffsetY = arm * 12
	case FormationSpiral:
		angle := float64(i)*(2*math.Pi/8)
		radius := 15 + float64(i)*8
		c.OffsetX = math.Cos(angle) * radius
		c.OffsetY = math.Sin(angle) * radius
	case FormationGrid:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		row := i / cols
		col := i % cols
		c.OffsetX = float64(col-cols/2) * 45
		c.OffsetY = float64(row) * 45
	case FormationChaos:
		c.OffsetX = float64((i*6151)%240) - 120
		c.OffsetY = float64((i*7919)%160) - 80
	case FormationLayered:
		ring := i % 4
		angle := float64(i) * 0.9
		radius := 20 + float64(ring)*35
		c.OffsetX = math.Cos(angle) * radius
		c.OffsetY = math.Sin(angle) * radius
	case FormationPulsing:
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := 30 + float64(i)*6
		c.OffsetX = math.Cos(angle) * radius
		c.OffsetY = math.Sin(angle) * radius
	}
}

// Draw renders every component at its formation offset from the boss
// center, applying the §4.11 "pulsing" size modulation when active.
func (b Boss) Draw(fb *Framebuffer, frame int, level float64) {
	pulse := 1.0
	if b.Formation == FormationPulsing {
		pulse = 1 + 0.3*level
	}
	spin := float64(frame) * 0.02 * 256 / (2 * math.Pi)

	for i := range b.Components {
		c := b.Components[i]
		cx := int(b.CenterX + c.OffsetX)
		cy := int(b.CenterY + c.OffsetY)
		size := int(c.Size * pulse)
		rot := c.Rotation
		if b.Formation == FormationSpiral {
			rot += int(spin)
		}
		DrawShape(fb, c.Shape, cx, cy, size, c.Hue, c.Sat, c.Val, rot)
	}
}

// BoundingDisc returns the boss's collision disc for projectile hit tests.
func (b Boss) BoundingDisc() (cx, cy, r float64) {
	return b.CenterX, b.CenterY, b.Radius
}
