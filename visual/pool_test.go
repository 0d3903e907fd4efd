package visual

import "testing"

func TestParticlePoolNeverExceedsCapacity(t *testing.T) {
	pool := NewParticlePool()
	for i := 0; i < ParticleCap+50; i++ {
		pool.Acquire()
	}
	if pool.ActiveCount != ParticleCap {
		t.Fatalf("expected pool to saturate at %d, got %d", ParticleCap, pool.ActiveCount)
	}
}

func TestParticlePoolReleaseSwapAndPop(t *testing.T) {
	pool := NewParticlePool()
	a := pool.Acquire()
	b := pool.Acquire()
	c := pool.Acquire()
	a.Life, b.Life, c.Life = 1, 2, 3

	pool.Release(a.PoolIndex)
	if pool.ActiveCount != 2 {
		t.Fatalf("expected 2 active particles after release, got %d", pool.ActiveCount)
	}
	for i := 0; i < pool.ActiveCount; i++ {
		if pool.Pool[i].PoolIndex != i {
			t.Fatalf("pool index %d inconsistent with slot %d", pool.Pool[i].PoolIndex, i)
		}
	}
}

func TestParticlePoolUpdateReleasesExpired(t *testing.T) {
	pool := NewParticlePool()
	p := pool.Acquire()
	p.Life = 1
	pool.Update()
	if pool.ActiveCount != 0 {
		t.Fatalf("expected particle with expired life to be released")
	}
}

func TestBassHitLifeFormula(t *testing.T) {
	pool := NewBassHitPool()
	TriggerBassHit(pool, 10, 10, 0.5, ShapeDiamond)
	if pool.ActiveCount != 1 {
		t.Fatalf("expected one bass hit to be active")
	}
	if pool.Pool[0].Life != 1000 {
		t.Fatalf("expected life = floor(0.5*2000) = 1000, got %d", pool.Pool[0].Life)
	}
}

func TestIsSawStep(t *testing.T) {
	for _, s := range []int{0, 8, 16, 24} {
		if !IsSawStep(s) {
			t.Fatalf("expected step %d to be a saw step", s)
		}
	}
	if IsSawStep(5) {
		t.Fatalf("expected step 5 to not be a saw step")
	}
}

func TestProjectileFireIntervalClip(t *testing.T) {
	if got := FireInterval(0); got != 20 {
		t.Fatalf("FireInterval(0) = %d, want 20", got)
	}
	if got := FireInterval(1); got != 3 {
		t.Fatalf("FireInterval(1) = %d, want 3", got)
	}
}

func TestProjectilePoolNeverExceedsCapacity(t *testing.T) {
	pool := NewProjectilePool()
	for i := 0; i < ProjectileCap+10; i++ {
		pool.Acquire()
	}
	if pool.ActiveCount != ProjectileCap {
		t.Fatalf("expected pool to saturate at %d, got %d", ProjectileCap, pool.ActiveCount)
	}
}

func TestProjectileCollisionRemovesProjectileNotBoss(t *testing.T) {
	pool := NewProjectilePool()
	pr := pool.Acquire()
	pr.X, pr.Y = 100, 100

	pool.Update(100, 100, 50) // projectile sits inside the boss disc
	if pool.ActiveCount != 0 {
		t.Fatalf("expected colliding projectile to be released")
	}
}
