// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-wave-defense/internal/defs"
)

// TowerPalette — столбец кнопок постройки, по одной на тип башни.
// Armed — выбран ли тип для следующего клика по карте.
type TowerPalette struct {
	buttons  []*Button
	types    []defs.TowerType
	Selected defs.TowerType
	Armed    bool
}

// NewTowerPalette раскладывает кнопки сверху вниз начиная с (x, y).
func NewTowerPalette(x, y, width, height, gap int) *TowerPalette {
	p := &TowerPalette{}
	for i, t := range defs.AllTowerTypes() {
		def, _ := t.Definition()
		top := y + i*(height+gap)
		rect := image.Rect(x, top, x+width, top+height)
		p.buttons = append(p.buttons, NewButton(rect,
			fmt.Sprintf("%d. %s", i+1, def.Name),
			fmt.Sprintf("Cost: $%d", def.Cost),
		))
		p.types = append(p.types, t)
	}
	return p
}

// HandleClick arms the tower type under (x, y). Clicking the armed type again disarms it.
func (p *TowerPalette) HandleClick(x, y int) bool {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			p.Toggle(p.types[i])
			return true
		}
	}
	return false
}

// Contains reports whether (x, y) hits any palette button.
func (p *TowerPalette) Contains(x, y int) bool {
	for _, b := range p.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Toggle выбирает тип, или снимает выбор, если он уже выбран.
func (p *TowerPalette) Toggle(t defs.TowerType) {
	if p.Armed && p.Selected == t {
		p.Armed = false
		return
	}
	p.Selected = t
	p.Armed = true
}

func (p *TowerPalette) Disarm() {
	p.Armed = false
}

// Refresh гасит кнопки, на которые не хватает денег.
func (p *TowerPalette) Refresh(money int) {
	for i, b := range p.buttons {
		def, _ := p.types[i].Definition()
		b.Enabled = money >= def.Cost
		b.Highlight = p.Armed && p.types[i] == p.Selected
	}
}

func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face) {
	for _, b := range p.buttons {
		b.Draw(screen, face)
	}
}
