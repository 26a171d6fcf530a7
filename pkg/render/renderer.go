// pkg/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-defense/internal/app"
	"go-wave-defense/pkg/geom"
)

// Renderer рисует кадр по снимку движка. Карта рисуется один раз в mapImage.
type Renderer struct {
	colors   MapColors
	face     font.Face
	mapImage *ebiten.Image
	mapKey   []geom.Point
}

func NewRenderer(width, height int, colors MapColors, face font.Face) *Renderer {
	return &Renderer{
		colors:   colors,
		face:     face,
		mapImage: ebiten.NewImage(width, height),
	}
}

// RenderMapImage создаёт предрендеренное изображение задника с путём.
func (r *Renderer) RenderMapImage(bounds geom.Bounds, path []geom.Point) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.PanelColor)
	vector.DrawFilledRect(r.mapImage, 0, 0, float32(bounds.Width), float32(bounds.Height), r.colors.BackgroundColor, false)

	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.colors.PathWidth, r.colors.PathColor, true)
	}
	// Скругляем изломы
	for _, p := range path {
		vector.DrawFilledCircle(r.mapImage, float32(p.X), float32(p.Y), r.colors.PathWidth/2, r.colors.PathColor, true)
	}
	if len(path) > 0 {
		start, end := path[0], path[len(path)-1]
		vector.DrawFilledCircle(r.mapImage, float32(start.X), float32(start.Y), r.colors.PathWidth/2, r.colors.EntryColor, true)
		vector.DrawFilledCircle(r.mapImage, float32(end.X), float32(end.Y), r.colors.PathWidth/2, r.colors.ExitColor, true)
	}
	r.mapKey = path
}

// Draw рисует задник, башни, врагов, снаряды и строку состояния.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	if !samePath(r.mapKey, snap.Path) {
		r.RenderMapImage(snap.Bounds, snap.Path)
	}
	screen.DrawImage(r.mapImage, nil)

	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Size/2), projectileColor, true)
	}
	r.drawHUD(screen, snap)
}

func (r *Renderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	radius := float32(t.Size / 2)
	fill := TowerColor(t.Type)

	if t.IsSelected {
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1.5, rangeColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	outline := DarkenColor(fill)
	if t.IsSelected {
		outline = selectedColor
	}
	vector.StrokeCircle(screen, x, y, radius, 2, outline, true)
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	radius := float32(e.Size / 2)
	vector.DrawFilledCircle(screen, x, y, radius, EnemyColor(e), true)
	if e.IsPowerUp {
		vector.StrokeCircle(screen, x, y, radius+2, 2, powerUpColor, true)
	}

	// Полоска здоровья над врагом
	barWidth := radius * 2
	barY := y - radius - 6
	vector.DrawFilledRect(screen, x-radius, barY, barWidth, 3, healthBackColor, false)
	vector.DrawFilledRect(screen, x-radius, barY, barWidth*float32(e.HealthRatio), 3, healthFrontColor, false)
}

// EnemyColor выбирает цвет врага по модификатору. Босс важнее всего.
func EnemyColor(e app.EnemyView) color.RGBA {
	switch {
	case e.IsBoss:
		return bossColor
	case e.IsArmored:
		return armoredColor
	case e.IsCamo:
		return camoColor
	case e.IsRegenerating:
		return regenColor
	}
	return enemyColor
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	if r.face == nil {
		return
	}
	line := fmt.Sprintf("Money: $%d   Lives: %d   Score: %d   Enemies: %d/%d   Speed: %.1fx",
		snap.Money, snap.Lives, snap.Score, snap.WaveSpawned, snap.WaveEnemies, snap.Speed)
	text.Draw(screen, line, r.face, 10, 20, hudTextColor)
}

func samePath(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
