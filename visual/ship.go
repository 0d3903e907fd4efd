package visual

import (
	"math"

	"github.com/halvorsen/seedforge/common"
)

// Ship row patterns: four entries each for nose/body/wings/trail, the
// fixed ASCII tables spec.md §6 calls normative (see the Open Question
// resolution in SPEC_FULL.md — no literal strings are given in spec.md
// itself, so this repository commits to the set below).
var noseRows = [4]string{
	"   ^^   ",
	"  /||\\  ",
	"  <##>  ",
	" *<oo>* ",
}
var bodyRows = [4]string{
	" /####\\ ",
	"[######]",
	"<[####]>",
	"{######}",
}
var wingRows = [4]string{
	"//    \\\\",
	"==    ==",
	"<<    >>",
	"~~    ~~",
}
var trailRows = [4]string{
	"   ~~   ",
	"  ~~~~  ",
	" ~~..~~ ",
	"  ....  ",
}

// Ship holds the seed-derived component indices and palette picked once at
// segment start (spec.md §4.10).
type Ship struct {
	Nose, Body, Wings, Trail int
	Size                     int
	PrimaryHue, SecondaryHue float64
}

// NewShip derives the ship's fixed appearance from the ship PRNG stream.
func NewShip(seed uint32) Ship {
	prng := common.NewStream(seed, common.MagicShip)
	s := Ship{
		Nose:  prng.Intn(4),
		Body:  prng.Intn(4),
		Wings: prng.Intn(4),
		Trail: prng.Intn(4),
		Size:  1 + prng.Intn(3),
	}
	s.PrimaryHue = prng.Float64()
	s.SecondaryHue = s.PrimaryHue + 0.3
	return s
}

// baseX, baseY are the ship's canonical screen position (25% from the left,
// vertically centered), per spec.md §4.10 and the test scenario of §8.6.
const baseX = Width / 4
const baseY = Height / 2

// Draw renders the ship at frame f with smoothed audio level L, applying
// sway/bob/dodge offsets and a multi-layer draw staggered by one glyph
// cell per additional size layer.
func (s Ship) Draw(fb *Framebuffer, frame int, level float64) {
	sway := 40 * math.Sin(float64(frame)*0.05)
	bob := 30 * math.Sin(float64(frame)*0.07)
	dodge := 35 * level

	x := baseX + int(sway+dodge)
	y := baseY + int(bob)

	for layer := 0; layer < s.Size; layer++ {
		ox := x + layer*8
		oy := y + layer*8
		hue := s.PrimaryHue
		if layer%2 == 1 {
			hue = s.SecondaryHue
		}
		drawRows(fb, ox, oy-16, wingRows[s.Wings], hue, 0.7, 0.9)
		drawRows(fb, ox, oy-8, noseRows[s.Nose], hue, 0.8, 1.0)
		drawRows(fb, ox, oy, bodyRows[s.Body], hue, 0.75, 0.95)
		drawRows(fb, ox, oy+8, trailRows[s.Trail], s.SecondaryHue, 0.6, 0.8)
	}
}

func drawRows(fb *Framebuffer, x, y int, row string, hue, sat, val float64) {
	color := HSV(hue, sat, val)
	for i, ch := range row {
		if ch == ' ' {
			continue
		}
		DrawGlyph(fb, x+i*8, y, ch, color)
	}
}
