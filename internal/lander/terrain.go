package lander

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Terrain is the static ground profile and decorative sky of one flight.
// It is generated once and never modified.
type Terrain struct {
	ground []core.Vec2
	sky    []core.Vec2
	width  float64
}

// Ground returns a copy of the ground profile, ordered by x.
func (t Terrain) Ground() []core.Vec2 {
	return append([]core.Vec2(nil), t.ground...)
}

// Sky returns a copy of the sky decoration points.
func (t Terrain) Sky() []core.Vec2 {
	return append([]core.Vec2(nil), t.sky...)
}

// Width returns the horizontal extent of the playfield.
func (t Terrain) Width() float64 {
	return t.width
}

// GroundAt returns the ground height at x by linear interpolation.
// Positions outside the profile take the nearest end point.
func (t Terrain) GroundAt(x float64) float64 {
	n := len(t.ground)
	if n == 0 {
		return 0
	}
	if x <= t.ground[0].X {
		return t.ground[0].Y
	}
	if x >= t.ground[n-1].X {
		return t.ground[n-1].Y
	}

	for i := 1; i < n; i++ {
		b := t.ground[i]
		if x > b.X {
			continue
		}
		a := t.ground[i-1]
		if b.X == a.X {
			return b.Y
		}
		return core.Lerp(a.Y, b.Y, (x-a.X)/(b.X-a.X))
	}
	return t.ground[n-1].Y
}

// TerrainGenerator produces terrain from a seed.
type TerrainGenerator struct {
	cfg config.TerrainConfig
}

// NewTerrainGenerator creates a generator for the given terrain settings.
func NewTerrainGenerator(cfg config.TerrainConfig) TerrainGenerator {
	return TerrainGenerator{cfg: cfg}
}

// Generate builds the terrain for a seed. The same seed always yields the
// same terrain.
//
// Ground x values are evenly spaced over [0, width]; both end points sit on
// the baseline and interior heights are uniform in [0, maxGround). Sky points
// are uniform over [0, width) x [skyMin, skyMax).
func (g TerrainGenerator) Generate(seed int64) Terrain {
	rng := rand.New(rand.NewSource(seed))

	n := g.cfg.GroundPoints
	ground := make([]core.Vec2, n)
	for i := range ground {
		x := 0.0
		if n > 1 {
			x = g.cfg.Width * float64(i) / float64(n-1)
		}
		ground[i].X = x
		if i > 0 && i < n-1 {
			ground[i].Y = g.cfg.MaxGround * rng.Float64()
		}
	}

	sky := make([]core.Vec2, g.cfg.SkyPoints)
	for i := range sky {
		sky[i] = core.Vec2{
			X: g.cfg.Width * rng.Float64(),
			Y: g.cfg.SkyMin + (g.cfg.SkyMax-g.cfg.SkyMin)*rng.Float64(),
		}
	}

	return Terrain{ground: ground, sky: sky, width: g.cfg.Width}
}
