package visual

import "testing"

func TestNewShipComponentsInRange(t *testing.T) {
	s := NewShip(0xCAFEBABE)
	if s.Nose < 0 || s.Nose >= 4 || s.Body < 0 || s.Body >= 4 || s.Wings < 0 || s.Wings >= 4 || s.Trail < 0 || s.Trail >= 4 {
		t.Fatalf("expected all component indices in [0,4), got %+v", s)
	}
	if s.Size < 1 || s.Size > 3 {
		t.Fatalf("expected size in [1,3], got %d", s.Size)
	}
	if s.SecondaryHue != s.PrimaryHue+0.3 {
		t.Fatalf("expected secondary hue to be primary + 0.3")
	}
}

func TestShipDrawsInkAtCanonicalPosition(t *testing.T) {
	fb := NewFramebuffer()
	s := NewShip(0xCAFEBABE)
	s.Draw(fb, 0, 0)

	found := false
	for y := 290; y <= 310 && !found; y++ {
		for x := 175; x <= 255; x++ {
			if fb.Get(x, y) != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("expected ink pixels in the canonical ship rectangle at frame 0")
	}
}
