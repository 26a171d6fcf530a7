package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-wave-defense/internal/config"
)

var (
	waveColor     = color.RGBA{90, 160, 255, 255}
	bossWaveColor = color.RGBA{230, 60, 60, 255}
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны и, во время перерыва, обратный отсчёт.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int, inProgress bool, breakSeconds float64) {
	if waveNumber <= 0 {
		return
	}

	textColor := waveColor
	if waveNumber%config.BossWaveEvery == 0 {
		textColor = bossWaveColor // Красный для босс-волн
	}
	label := "Wave " + toRoman(waveNumber)
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, i.X-bounds.Dx()/2, i.Y, textColor)

	if !inProgress {
		countdown := fmt.Sprintf("Next wave in %.1fs", breakSeconds)
		bounds = text.BoundString(face, countdown)
		text.Draw(screen, countdown, face, i.X-bounds.Dx()/2, i.Y+face.Metrics().Height.Ceil()+4, textLightColor)
	}
}
