package lander

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestFlameFor(t *testing.T) {
	tests := []struct {
		thrust float64
		want   FlameBand
	}{
		{0, FlameNone},
		{10, FlameNone},
		{11, FlameSmall},
		{4999, FlameSmall},
		{5000, FlameNone},
		{5001, FlameMedium},
		{15000, FlameNone},
		{15001, FlameLarge},
		{27000, FlameLarge},
	}
	for _, tt := range tests {
		if got := FlameFor(tt.thrust); got != tt.want {
			t.Errorf("FlameFor(%v) = %v, want %v", tt.thrust, got, tt.want)
		}
	}
}

func TestBuildSpriteUpright(t *testing.T) {
	sp := BuildSprite(50, 20, 0, 1, FlameLarge)

	if len(sp.Base) != 7 || len(sp.Cabin) != 4 || len(sp.Flame) != 3 {
		t.Fatalf("polygon sizes = %d/%d/%d", len(sp.Base), len(sp.Cabin), len(sp.Flame))
	}

	lo, hi := core.Bounds(append(sp.Base, sp.Cabin...))
	if !near(hi.Y-20, 9, eps) {
		t.Errorf("sprite top %v above reference, want 9", hi.Y-20)
	}
	if !near(lo.X, 50-3.9, eps) || !near(hi.X, 50+3.9, eps) {
		t.Errorf("sprite spans x [%v, %v]", lo.X, hi.X)
	}

	// The large plume reaches one unit below the reference point.
	if tip := sp.Flame[2]; !near(tip.X, 50, eps) || !near(tip.Y, 17, eps) {
		t.Errorf("flame tip = %v", tip)
	}

	if idle := BuildSprite(50, 20, 0, 1, FlameNone); len(idle.Flame) != 0 {
		t.Error("idle engine drew a flame")
	}
}

func TestBuildSpriteTiltedRightLeansRight(t *testing.T) {
	upright := BuildSprite(50, 20, 0, 1, FlameNone)
	tilted := BuildSprite(50, 20, 0.5, 1, FlameNone)

	if tilted.Cabin[1].X <= upright.Cabin[1].X {
		t.Errorf("positive tilt moved the cabin from %v to %v", upright.Cabin[1].X, tilted.Cabin[1].X)
	}
}

func TestRenderScene(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	tr := NewTerrainGenerator(cfg.Terrain).Generate(3)
	st := InitialState(cfg)
	st.Height = 40

	dst := core.NewScreen(80, 24)
	Render(dst, Scene{Terrain: tr, Ceiling: cfg.Terrain.Ceiling, State: st, Thrust: 20000})

	// The baseline row is solid ground.
	if row := dst.Row(23); strings.Trim(row, string(GroundChar)) != "" {
		t.Errorf("bottom row is not all ground: %q", row)
	}

	counts := map[core.Color]int{}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			counts[dst.GetCell(x, y).Color]++
		}
	}
	for _, c := range []core.Color{core.ColorGround, core.ColorHull, core.ColorCabin, core.ColorFlame, core.ColorStar} {
		if counts[c] == 0 {
			t.Errorf("no %v cells drawn", c)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	tr := NewTerrainGenerator(cfg.Terrain).Generate(3)

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		dst := core.NewScreen(size[0], size[1])
		Render(dst, Scene{Terrain: tr, Ceiling: cfg.Terrain.Ceiling, State: InitialState(cfg)})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(200, 110, 80, 22)

	for _, cell := range [][2]int{{0, 0}, {40, 11}, {79, 21}} {
		col, row := vp.Cell(vp.Center(cell[0], cell[1]))
		if col != cell[0] || row != cell[1] {
			t.Errorf("Cell(Center(%v)) = (%d, %d)", cell, col, row)
		}
	}
}
