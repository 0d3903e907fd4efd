package common

import "testing"

func TestPRNGMatchesLCGFormula(t *testing.T) {
	p := NewPRNG(1)
	got := p.Next()
	want := uint32(1*1664525 + 1013904223)
	if got != want {
		t.Fatalf("Next() = %d, want %d", got, want)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNG(0xCAFEBABE)
	b := NewPRNG(0xCAFEBABE)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("identical seeds diverged at iteration %d", i)
		}
	}
}

func TestNewStreamIndependenceFromXOR(t *testing.T) {
	terrain := NewStream(42, MagicTerrain)
	ship := NewStream(42, MagicShip)
	if terrain.Next() == ship.Next() {
		t.Fatalf("expected differently-keyed streams from the same seed to diverge")
	}
}

func TestIntnWithinRange(t *testing.T) {
	p := NewPRNG(7)
	for i := 0; i < 1000; i++ {
		v := p.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) returned out-of-range value %d", v)
		}
	}
}

func TestFloat64WithinUnitRange(t *testing.T) {
	p := NewPRNG(7)
	for i := 0; i < 1000; i++ {
		v := p.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() returned out-of-range value %f", v)
		}
	}
}
