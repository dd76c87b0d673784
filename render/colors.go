package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)   // Dim slate
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(150, 150, 160) // Gray labels

	RgbPlayer      = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbPlayerShot  = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbPlayerHurt  = tcell.NewRGBColor(255, 120, 120) // Light red, hull under a third
	RgbHostileShot = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbEnemyApproach = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbEnemyEngage   = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbEnemyRetreat  = tcell.NewRGBColor(0, 130, 0)     // Dark green
	RgbTarget        = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbExplosion     = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbSpark         = tcell.NewRGBColor(255, 220, 120) // Pale yellow
	RgbGameOver      = tcell.NewRGBColor(255, 80, 80)   // Red
)

// fade scales c toward the background by t in [0, 1], 1 is full color
func fade(c tcell.Color, t float64) tcell.Color {
	t = max(0, min(1, t))
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(a, b int32) int32 {
		return b + int32(float64(a-b)*t)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
