package visual

import "github.com/halvorsen/seedforge/common"

// TileKind enumerates the bottom-layer terrain tile types (spec.md §4.9).
type TileKind int

const (
	TileFlat TileKind = iota
	TileWall
	TileSlopeUp
	TileSlopeDown
	TileGap
)

// TileCount is the fixed tile pattern length; tileSize must be a power of
// two so the scroll math can use bitwise ANDs (spec.md §4.9).
const TileCount = 64
const TileSize = 32 // power of two

// Terrain holds the fixed, once-generated tile pattern.
type Terrain struct {
	Tiles [TileCount]TileKind
}

// tileWeights gives each tile type its relative spawn probability; flat
// ground dominates, gaps are rare.
var tileWeights = [...]struct {
	kind   TileKind
	weight int
}{
	{TileFlat, 40},
	{TileWall, 20},
	{TileSlopeUp, 15},
	{TileSlopeDown, 15},
	{TileGap, 10},
}

func weightedTile(prng *common.PRNG) TileKind {
	total := 0
	for _, w := range tileWeights {
		total += w.weight
	}
	roll := prng.Intn(total)
	acc := 0
	for _, w := range tileWeights {
		acc += w.weight
		if roll < acc {
			return w.kind
		}
	}
	return TileFlat
}

// NewTerrain generates the 64-tile pattern from the terrain PRNG stream
// (seed XOR 0x7E44A1, fixed by spec.md), using weighted choice and
// variable-length runs.
func NewTerrain(seed uint32) Terrain {
	prng := common.NewStream(seed, common.MagicTerrain)
	var t Terrain
	i := 0
	for i < TileCount {
		kind := weightedTile(prng)
		runLen := 2 + prng.Intn(5)
		for r := 0; r < runLen && i < TileCount; r++ {
			t.Tiles[i] = kind
			i++
		}
	}
	return t
}

// tilePalette maps each tile kind to its base hue range, per spec.md §4.9
// ("blue/rainbow, green/yellow, magenta, cyan, orange").
func tilePalette(kind TileKind) (hueLo, hueHi float64) {
	switch kind {
	case TileFlat:
		return 0.55, 0.95 // blue through rainbow sweep
	case TileWall:
		return 0.25, 0.17 // green to yellow
	case TileSlopeUp:
		return 0.83, 0.83 // magenta
	case TileSlopeDown:
		return 0.5, 0.5 // cyan
	case TileGap:
		return 0.08, 0.08 // orange
	default:
		return 0, 0
	}
}

// denseChars, mediumChars, sparseChars are the three density bands of
// spec.md §4.9's hash-thresholded character selection.
var denseChars = [...]rune{'#', '@', '%', '*'}
var mediumChars = [...]rune{'=', '+', '~', ':'}
var sparseChars = [...]rune{'-', '.', ',', '_'}

func terrainChar(x, y, frame int, level float64) rune {
	h := ((x*13 + y*7) ^ (x >> 3)) & 0xFF
	t1 := 40 + int(level*100) + frame/8
	t2 := t1 + 60
	switch {
	case h < t1:
		return denseChars[h%len(denseChars)]
	case h < t2:
		return mediumChars[h%len(mediumChars)]
	default:
		return sparseChars[h%len(sparseChars)]
	}
}

// ScrollSpeed is spec.md §4.9's floor(frame*2*(1+3*L)) per-frame scroll
// speed in pixels.
func ScrollSpeed(frame int, level float64) int {
	return int(float64(frame) * 2 * (1 + 3*level))
}

// DrawBottom renders the 64-tile bottom layer scrolling beneath the
// skyline, one glyph cell per world column.
func (t Terrain) DrawBottom(fb *Framebuffer, frame int, level float64) {
	speed := ScrollSpeed(frame, level)
	tileOffset := speed & (TileSize - 1)
	scrollTiles := speed / TileSize

	rows := Height / 8
	startRow := rows * 2 / 3
	for col := 0; col*8-tileOffset < Width; col++ {
		tileIdx := (scrollTiles + col) & (TileCount - 1)
		kind := t.Tiles[tileIdx]
		hueLo, hueHi := tilePalette(kind)

		for row := startRow; row < rows; row++ {
			x := col*8 - tileOffset
			y := row * 8
			within := float64(row-startRow) / float64(rows-startRow)
			hue := hueLo + (hueHi-hueLo)*within
			if kind == TileWall {
				hue += level * 0.1
			}
			sat := 0.9 + level*0.1
			val := 0.8 + level*0.2
			ch := terrainChar(x, y, frame, level)
			DrawGlyph(fb, x, y, ch, HSV(hue, sat, val))
		}
	}
}

// topChars are the intensity-banded characters of the top sine-wave band.
var topChars = [...]rune{'^', '=', '~', '-', '_'}

// DrawTop renders the top ASCII sine-wave band at 2x the bottom layer's
// horizontal scroll speed, hue offset +0.3 from the terrain base hue.
func (t Terrain) DrawTop(fb *Framebuffer, frame int, level, hueBase float64) {
	speed := ScrollSpeed(frame, level) * 2
	hue := hueBase + 0.3
	color := HSV(hue, 0.6, 0.9)

	for col := 0; col*8 < Width; col++ {
		worldX := col*8 + speed
		phase := float64(worldX)*0.02 + float64(frame)*0.03
		height := int((common.SinLUT(common.NormalizeAngle(phase)) + 1) * 0.5 * 40)
		band := height / 8
		if band >= len(topChars) {
			band = len(topChars) - 1
		}
		if band < 0 {
			band = 0
		}
		DrawGlyph(fb, col*8, 40+height, topChars[band], color)
	}
}
