// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

const (
	panelMargin = 5
	lineHeight  = 18
)

var (
	panelBgColor     = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// TowerInfo — то, что панель показывает о выделенной башне.
type TowerInfo struct {
	Type  defs.TowerType
	Range float64
}

// InfoPanel displays the stats of the selected tower.
type InfoPanel struct {
	Rect image.Rectangle
	face font.Face
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(rect image.Rectangle, face font.Face) *InfoPanel {
	return &InfoPanel{Rect: rect, face: face}
}

// Lines возвращает строки для башни; пустой результат для неизвестного типа.
func (p *InfoPanel) Lines(info TowerInfo) []string {
	def, ok := info.Type.Definition()
	if !ok {
		return nil
	}
	camo := "no"
	if def.CanSeeCamo {
		camo = "yes"
	}
	return []string{
		def.Name,
		fmt.Sprintf("Damage: %.0f", def.Damage),
		fmt.Sprintf("Fire Rate: %.2f/s", def.FireRate),
		fmt.Sprintf("Range: %.0f", info.Range),
		"Sees camo: " + camo,
		fmt.Sprintf("Sell: +$%d", int(float64(def.Cost)*config.TowerRefundRatio)),
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, info *TowerInfo) {
	if info == nil {
		return
	}
	r := p.Rect.Inset(panelMargin)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelBgColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, panelBorderColor, true)

	y := r.Min.Y + lineHeight
	for _, line := range p.Lines(*info) {
		text.Draw(screen, line, p.face, r.Min.X+10, y, textLightColor)
		y += lineHeight
	}
}
