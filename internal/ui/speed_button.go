// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// SpeedLevels — множители, по которым циклически переключается кнопка.
var SpeedLevels = []float64{1.0, 2.0, 3.0, 0.5}

// SpeedButton переключает скорость игры по кругу.
type SpeedButton struct {
	*Button
	CurrentState   int
	LastToggleTime time.Time
}

func NewSpeedButton(rect image.Rectangle) *SpeedButton {
	b := &SpeedButton{Button: NewButton(rect)}
	b.refreshLabel()
	return b
}

// ToggleState переходит к следующему множителю и возвращает его.
func (b *SpeedButton) ToggleState() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(SpeedLevels)
	b.LastToggleTime = time.Now()
	b.refreshLabel()
	return b.Multiplier()
}

// Sync выставляет кнопку по фактически применённой скорости.
func (b *SpeedButton) Sync(applied float64) {
	for i, level := range SpeedLevels {
		if level == applied {
			b.CurrentState = i
			break
		}
	}
	b.refreshLabel()
}

func (b *SpeedButton) Multiplier() float64 {
	return SpeedLevels[b.CurrentState]
}

// CanToggle не даёт дребезгу кликов переключать кнопку дважды.
func (b *SpeedButton) CanToggle(now time.Time, cooldown time.Duration) bool {
	return now.Sub(b.LastToggleTime) >= cooldown
}

func (b *SpeedButton) refreshLabel() {
	b.Lines = []string{"Speed", fmt.Sprintf("%.1fx", b.Multiplier())}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	b.Highlight = b.Multiplier() != 1.0
	b.Button.Draw(screen, face)
}
