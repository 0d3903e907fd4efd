package visual

// BassHitCap is the fixed bass-hit shape pool capacity (spec.md §4.12).
const BassHitCap = 96

// BassHit is a transient shape triggered on a saw step.
type BassHit struct {
	X, Y      float64
	Amplitude float64
	Life      int
	Shape     ShapeKind

	PoolIndex int
	Active    bool
}

// BassHitPool is fixed-capacity with swap-and-pop release, same shape as
// ParticlePool / the pack's BulletPool.
type BassHitPool struct {
	Pool        []*BassHit
	ActiveCount int
}

func NewBassHitPool() *BassHitPool {
	p := &BassHitPool{Pool: make([]*BassHit, BassHitCap)}
	for i := range p.Pool {
		p.Pool[i] = &BassHit{PoolIndex: i}
	}
	return p
}

func (p *BassHitPool) Acquire() *BassHit {
	if p.ActiveCount >= len(p.Pool) {
		return nil
	}
	h := p.Pool[p.ActiveCount]
	h.PoolIndex = p.ActiveCount
	h.Active = true
	p.ActiveCount++
	return h
}

func (p *BassHitPool) Release(index int) {
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

// Update decays life and releases exhausted hits, reverse-iterated so
// swap-and-pop release never skips an entry.
func (p *BassHitPool) Update() {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		h := p.Pool[i]
		h.Life--
		if h.Life <= 0 {
			p.Release(i)
		}
	}
}

func (p *BassHitPool) Draw(fb *Framebuffer, hue float64) {
	for i := 0; i < p.ActiveCount; i++ {
		h := p.Pool[i]
		size := int(20 + h.Amplitude*20)
		DrawShape(fb, h.Shape, int(h.X), int(h.Y), size, hue, 0.7, 0.5+h.Amplitude*0.5, 0)
	}
}

// SawSteps are the step indices within a segment at which bass-hit shapes
// may trigger (spec.md GLOSSARY "Saw step").
var SawSteps = [...]int{0, 8, 16, 24}

// IsSawStep reports whether step is one of the designated saw steps.
func IsSawStep(step int) bool {
	for _, s := range SawSteps {
		if s == step {
			return true
		}
	}
	return false
}

// TriggerBassHit acquires a bass-hit shape at (x,y) with the given
// amplitude; life = floor(amplitude*2000) per spec.md §4.12.
func TriggerBassHit(pool *BassHitPool, x, y, amplitude float64, shape ShapeKind) {
	h := pool.Acquire()
	if h == nil {
		return
	}
	h.X, h.Y = x, y
	h.Amplitude = amplitude
	h.Life = int(amplitude * 2000)
	h.Shape = shape
}
