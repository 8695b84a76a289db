package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Glyphs used for the playfield.
const (
	GroundChar = '█'
	StarChar   = '.'
	HullChar   = '▓'
	CabinChar  = '▒'
	FlameChar  = '^'
)

// FlameBand classifies the exhaust plume size.
type FlameBand int

const (
	FlameNone FlameBand = iota
	FlameSmall
	FlameMedium
	FlameLarge
)

// FlameFor returns the plume drawn for a given thrust in newtons. The band
// edges are open, so exactly 5000 N or 15000 N draws nothing.
func FlameFor(thrust float64) FlameBand {
	switch {
	case thrust > 10 && thrust < 5000:
		return FlameSmall
	case thrust > 5000 && thrust < 15000:
		return FlameMedium
	case thrust > 15000:
		return FlameLarge
	default:
		return FlameNone
	}
}

// Sprite dimensions in world units at scale 1.
const (
	spriteUnit   = 3.0
	spriteHeight = 3 * spriteUnit
	minSpriteRow = 5 // rows the sprite should span on screen
)

// Sprite is the lander outline in world coordinates.
type Sprite struct {
	Base  []core.Vec2
	Cabin []core.Vec2
	Flame []core.Vec2 // empty when the engine is idle
}

// BuildSprite lays out the lander polygons around the reference point
// (x, y), rotated by theta and grown by scale.
func BuildSprite(x, y, theta, scale float64, band FlameBand) Sprite {
	u := spriteUnit * scale
	x1, x2, x3 := 1.3*u, 1.0*u, 0.6*u
	y1, y2, y3 := 0.3*u, 2.0*u, 3.0*u
	plume := [...]float64{0.5 * u, 0.7 * u, 1.0 * u}

	s, c := math.Sin(theta), math.Cos(theta)
	v := [13]core.Vec2{
		{X: x - (x2/2)*c + y1*s, Y: y + y1*c + (x1/2)*s},
		{X: x - x2*c + y1*s, Y: y + y1*c + x2*s},
		{X: x - x1*c, Y: y + x1*s},
		{X: x - x2*c + (y2-y1)*s, Y: y + y2*c + x2*s},
		{X: x - x3*c + (y3-y1)*s, Y: y + y3*c + x3*s},
		{X: x + x3*c + (y3-y1)*s, Y: y + y3*c - x3*s},
		{X: x + x2*c + (y2-y1)*s, Y: y + y2*c - x2*s},
		{X: x + x1*c, Y: y - x1*s},
		{X: x + x2*c + y1*s, Y: y + y1*c - x2*s},
		{X: x + (x2/2)*c + y1*s, Y: y + y1*c - (x2/2)*s},
	}
	for i, d := range plume {
		v[10+i] = core.Vec2{X: x - d*s, Y: y - d*c}
	}

	sp := Sprite{
		Base:  []core.Vec2{v[0], v[1], v[2], v[3], v[6], v[7], v[8]},
		Cabin: []core.Vec2{v[3], v[4], v[5], v[6]},
	}
	if band != FlameNone {
		sp.Flame = []core.Vec2{v[0], v[9], v[9+int(band)]}
	}
	return sp
}

// Viewport maps world coordinates onto screen cells. The bottom row is
// the baseline and the top row the ceiling.
type Viewport struct {
	width, ceiling float64
	cols, rows     int
}

// NewViewport creates a viewport for a world of the given extent.
func NewViewport(width, ceiling float64, cols, rows int) Viewport {
	return Viewport{width: width, ceiling: ceiling, cols: cols, rows: rows}
}

// Cell returns the screen cell holding world point p.
func (v Viewport) Cell(p core.Vec2) (col, row int) {
	col = int(math.Floor(p.X / v.width * float64(v.cols)))
	row = v.rows - 1 - int(math.Floor(p.Y/v.ceiling*float64(v.rows)))
	return col, row
}

// Center returns the world point at the middle of a screen cell.
func (v Viewport) Center(col, row int) core.Vec2 {
	return core.Vec2{
		X: (float64(col) + 0.5) * v.width / float64(v.cols),
		Y: (float64(v.rows-1-row) + 0.5) * v.ceiling / float64(v.rows),
	}
}

// rowHeight returns the world height of one screen row.
func (v Viewport) rowHeight() float64 {
	return v.ceiling / float64(v.rows)
}

// Scene is everything drawn on the playfield for one frame.
type Scene struct {
	Terrain Terrain
	Ceiling float64
	State   LanderState
	Thrust  float64 // N, picks the flame band
}

// Render draws the scene onto dst: ground, sky points and the lander.
func Render(dst *core.Screen, sc Scene) {
	dst.Fill(' ', core.ColorSky)
	cols, rows := dst.Width(), dst.Height()
	if cols == 0 || rows == 0 || sc.Terrain.Width() <= 0 || sc.Ceiling <= 0 {
		return
	}
	vp := NewViewport(sc.Terrain.Width(), sc.Ceiling, cols, rows)

	for _, p := range sc.Terrain.Sky() {
		col, row := vp.Cell(p)
		dst.SetColored(col, row, StarChar, core.ColorStar)
	}

	for col := 0; col < cols; col++ {
		top := vp.Center(col, 0)
		_, groundRow := vp.Cell(core.Vec2{X: top.X, Y: sc.Terrain.GroundAt(top.X)})
		if groundRow > rows-1 {
			groundRow = rows - 1
		}
		dst.DrawVLine(col, groundRow, rows-groundRow, GroundChar, core.ColorGround)
	}

	drawLander(dst, vp, sc.State, sc.Thrust)
}

func drawLander(dst *core.Screen, vp Viewport, st LanderState, thrust float64) {
	scale := math.Max(1, minSpriteRow*vp.rowHeight()/spriteHeight)
	sp := BuildSprite(st.X, math.Max(st.Height, 0), st.Theta, scale, FlameFor(thrust))

	n := fillPolygon(dst, vp, sp.Flame, FlameChar, core.ColorFlame)
	n += fillPolygon(dst, vp, sp.Base, HullChar, core.ColorHull)
	n += fillPolygon(dst, vp, sp.Cabin, CabinChar, core.ColorCabin)
	if n > 0 {
		return
	}

	// Smaller than a cell: mark where it is.
	col, row := vp.Cell(core.Vec2{X: st.X, Y: math.Max(st.Height, 0)})
	row = min(row, vp.rows-1)
	dst.SetColored(col, row, HullChar, core.ColorHull)
}

// fillPolygon sets every cell whose center lies inside poly and returns
// how many it set.
func fillPolygon(dst *core.Screen, vp Viewport, poly []core.Vec2, r rune, c core.Color) int {
	if len(poly) < 3 {
		return 0
	}
	lo, hi := core.Bounds(poly)
	c0, r1 := vp.Cell(lo)
	c1, r0 := vp.Cell(hi)
	c0 = core.Clamp(c0, 0, vp.cols-1)
	c1 = core.Clamp(c1, 0, vp.cols-1)
	r0 = core.Clamp(r0, 0, vp.rows-1)
	r1 = core.Clamp(r1, 0, vp.rows-1)

	n := 0
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if core.PointInPolygon(vp.Center(col, row), poly) {
				dst.SetColored(col, row, r, c)
				n++
			}
		}
	}
	return n
}
