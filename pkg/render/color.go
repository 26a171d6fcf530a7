// pkg/render/color.go
package render

import (
	"image/color"

	"go-wave-defense/internal/defs"
)

// MapColors holds the colors of the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	PanelColor      color.RGBA
	PathWidth       float32
}

// DefaultMapColors — палитра карты по умолчанию.
func DefaultMapColors() MapColors {
	return MapColors{
		BackgroundColor: color.RGBA{30, 70, 40, 255},
		PathColor:       color.RGBA{150, 120, 80, 255},
		EntryColor:      color.RGBA{60, 200, 60, 255},
		ExitColor:       color.RGBA{200, 60, 60, 255},
		PanelColor:      color.RGBA{20, 20, 28, 255},
		PathWidth:       24,
	}
}

var (
	towerColors = map[defs.TowerType]color.RGBA{
		defs.TowerBasic:   {70, 130, 220, 255},
		defs.TowerSniper:  {200, 200, 60, 255},
		defs.TowerMachine: {210, 110, 40, 255},
	}
	enemyColor       = color.RGBA{200, 50, 50, 255}
	armoredColor     = color.RGBA{140, 140, 150, 255}
	camoColor        = color.RGBA{90, 120, 80, 160}
	regenColor       = color.RGBA{230, 90, 200, 255}
	bossColor        = color.RGBA{120, 0, 0, 255}
	powerUpColor     = color.RGBA{255, 215, 0, 255}
	projectileColor  = color.RGBA{250, 250, 250, 255}
	rangeColor       = color.RGBA{255, 255, 255, 90}
	selectedColor    = color.RGBA{255, 255, 255, 255}
	healthBackColor  = color.RGBA{60, 0, 0, 255}
	healthFrontColor = color.RGBA{40, 220, 40, 255}
	hudTextColor     = color.RGBA{235, 235, 235, 255}
)

// TowerColor returns the fill color of a tower type; unknown types are gray.
func TowerColor(t defs.TowerType) color.RGBA {
	if c, ok := towerColors[t]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
