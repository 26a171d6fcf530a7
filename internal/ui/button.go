// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonColor          = color.RGBA{60, 60, 80, 255}
	buttonHighlightColor = color.RGBA{40, 110, 160, 255}
	buttonDisabledColor  = color.RGBA{45, 45, 50, 255}
	buttonBorderColor    = color.RGBA{200, 200, 200, 255}
	textLightColor       = color.RGBA{235, 235, 235, 255}
	textDimColor         = color.RGBA{120, 120, 120, 255}
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	Rect      image.Rectangle
	Lines     []string // Текст, по строке на элемент
	Enabled   bool
	Highlight bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, lines ...string) *Button {
	return &Button{Rect: rect, Lines: lines, Enabled: true}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := buttonColor
	switch {
	case !b.Enabled:
		bg = buttonDisabledColor
	case b.Highlight:
		bg = buttonHighlightColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)

	textColor := textLightColor
	if !b.Enabled {
		textColor = textDimColor
	}
	lineHeight := face.Metrics().Height.Ceil()
	top := b.Rect.Min.Y + (b.Rect.Dy()-lineHeight*len(b.Lines))/2 + face.Metrics().Ascent.Ceil()
	for i, line := range b.Lines {
		bounds := text.BoundString(face, line)
		tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		text.Draw(screen, line, face, tx, top+i*lineHeight, textColor)
	}
}
