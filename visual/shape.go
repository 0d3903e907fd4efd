package visual

import "github.com/halvorsen/seedforge/common"

// ShapeKind enumerates the five polygon shapes boss components and
// bass-hit shapes are drawn from (spec.md §4.11).
type ShapeKind int

const (
	ShapeTriangle ShapeKind = iota
	ShapeDiamond
	ShapeHexagon
	ShapeStar
	ShapeSquare
)

// edgeGlyph is the fixed glyph used to interpolate along each shape's
// edges (spec.md §4.11's "interpolated edge made of a fixed glyph").
const edgeGlyph = '*'

// vertexAngles returns the unit-circle angle (in LUT units, 0-255) of each
// vertex of kind, evenly spaced for all shapes; the star's inner/outer
// alternation is handled by vertexRadii.
func vertexAngles(kind ShapeKind) []int {
	n := vertexCount(kind)
	angles := make([]int, n)
	for i := 0; i < n; i++ {
		angles[i] = (i * 256) / n
	}
	return angles
}

func vertexCount(kind ShapeKind) int {
	switch kind {
	case ShapeTriangle:
		return 3
	case ShapeDiamond:
		return 4
	case ShapeHexagon:
		return 6
	case ShapeStar:
		return 10
	case ShapeSquare:
		return 4
	default:
		return 3
	}
}

// vertexRadii scales each vertex's radius; every shape but the star uses a
// constant radius, the star alternates outer/inner points.
func vertexRadii(kind ShapeKind, size int) []int {
	n := vertexCount(kind)
	radii := make([]int, n)
	for i := range radii {
		radii[i] = size
	}
	if kind == ShapeStar {
		for i := range radii {
			if i%2 == 1 {
				radii[i] = size / 2
			}
		}
	}
	if kind == ShapeSquare {
		// The unrotated 4-vertex polygon has its corners on the axes (a
		// diamond); the square is that polygon rotated 45 degrees, baked
		// into DrawShape's vertex angle offset instead of a separate path.
	}
	return radii
}

// DrawShape rasterizes kind as a closed polygon of edgeGlyph characters at
// the rotated/scaled vertices, centered at (cx,cy), rotation in LUT units
// (0-255 per spec.md §4.8's angle normalization).
func DrawShape(fb *Framebuffer, kind ShapeKind, cx, cy, size int, hue, sat, val float64, rotation int) {
	angles := vertexAngles(kind)
	radii := vertexRadii(kind, size)
	rotOffset := 0
	if kind == ShapeSquare {
		rotOffset = 32 // 45 degrees in 256-unit LUT space
	}

	color := HSV(hue, sat, val)
	type pt struct{ x, y int }
	verts := make([]pt, len(angles))
	for i, a := range angles {
		idx := wrapLUTIndex(a + rotation + rotOffset)
		s, c := common.SinLUT(idx), common.CosLUT(idx)
		verts[i] = pt{
			x: cx + int(c*float64(radii[i])),
			y: cy + int(s*float64(radii[i])),
		}
	}
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		drawEdge(fb, a.x, a.y, b.x, b.y, color)
	}
}

// drawEdge walks from (x0,y0) to (x1,y1) placing edgeGlyph at evenly spaced
// points (an 8-pixel glyph cell stride), a simple DDA since shape edges are
// short relative to frame size.
func drawEdge(fb *Framebuffer, x0, y0, x1, y1 int, color uint32) {
	dx := x1 - x0
	dy := y1 - y0
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	steps /= 8
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(float64(dx)*t)
		y := y0 + int(float64(dy)*t)
		DrawGlyph(fb, x-4, y-4, edgeGlyph, color)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// wrapLUTIndex reduces an angle already expressed in 256-unit LUT space
// (as opposed to common.NormalizeAngle's radian input) into [0, 256).
func wrapLUTIndex(i int) int {
	i %= 256
	if i < 0 {
		i += 256
	}
	return i
}
