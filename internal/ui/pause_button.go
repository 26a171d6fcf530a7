// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pauseColor = color.RGBA{220, 180, 60, 255}
	playColor  = color.RGBA{90, 200, 90, 255}
)

// PauseButton рисует "||" во время игры и треугольник на паузе.
type PauseButton struct {
	Rect     image.Rectangle
	IsPaused bool
}

func NewPauseButton(rect image.Rectangle) *PauseButton {
	return &PauseButton{Rect: rect}
}

func (b *PauseButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, buttonColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)

	cx, cy := x+w/2, y+h/2
	size := min(w, h) * 0.3
	if b.IsPaused {
		// Треугольник (play)
		vector.StrokeLine(screen, cx-size, cy-size, cx-size, cy+size, 3, playColor, true)
		vector.StrokeLine(screen, cx-size, cy-size, cx+size, cy, 3, playColor, true)
		vector.StrokeLine(screen, cx-size, cy+size, cx+size, cy, 3, playColor, true)
		return
	}
	// Два прямоугольника (pause)
	barWidth := size * 0.6
	vector.DrawFilledRect(screen, cx-size, cy-size, barWidth, size*2, pauseColor, true)
	vector.DrawFilledRect(screen, cx+size-barWidth, cy-size, barWidth, size*2, pauseColor, true)
}
