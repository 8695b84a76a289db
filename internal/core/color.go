package core

// Color identifies what a screen cell depicts.
// The platform layer decides how each one looks in the terminal.
type Color uint8

// Scene colors used by the lander renderer and the HUD.
const (
	ColorDefault Color = iota
	ColorSky           // Background of the playfield
	ColorStar          // Decorative sky points
	ColorGround        // Terrain fill
	ColorHull          // Lander descent stage
	ColorCabin         // Lander ascent stage
	ColorFlame         // Engine exhaust
	ColorText          // HUD text drawn inside the playfield
	ColorAxis          // Chart axes and tick marks
	ColorTrace         // Chart data line
)

// String returns the color name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorStar:
		return "star"
	case ColorGround:
		return "ground"
	case ColorHull:
		return "hull"
	case ColorCabin:
		return "cabin"
	case ColorFlame:
		return "flame"
	case ColorText:
		return "text"
	case ColorAxis:
		return "axis"
	case ColorTrace:
		return "trace"
	default:
		return "unknown"
	}
}
