// internal/state/input.go
package state

import (
	"image"
	"time"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/ui"
)

// Action — что состояние должно сделать после клика.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
)

// InputController переводит клики и клавиши в запросы к движку.
// Сам ничего не рисует и не знает про ebiten-ввод, поэтому тестируется без окна.
type InputController struct {
	ctx         interfaces.GameContext
	Palette     *ui.TowerPalette
	SpeedButton *ui.SpeedButton
	PauseButton *ui.PauseButton
	mapWidth    int

	message     string
	messageLeft float64
	now         func() time.Time
}

// NewInputController раскладывает кнопки правой панели начиная с x = mapWidth.
func NewInputController(ctx interfaces.GameContext, mapWidth int) *InputController {
	return &InputController{
		ctx:         ctx,
		Palette:     ui.NewTowerPalette(mapWidth+20, 70, 160, 44, 10),
		SpeedButton: ui.NewSpeedButton(image.Rect(mapWidth+20, 250, mapWidth+100, 300)),
		PauseButton: ui.NewPauseButton(image.Rect(mapWidth+120, 250, mapWidth+180, 300)),
		mapWidth:    mapWidth,
		now:         time.Now,
	}
}

// LeftClick: кнопки панели, затем постройка выбранного типа, иначе выделение башни.
func (c *InputController) LeftClick(x, y int) Action {
	if c.PauseButton.Contains(x, y) {
		return ActionTogglePause
	}
	if c.SpeedButton.Contains(x, y) {
		now := c.now()
		if c.SpeedButton.CanToggle(now, config.ClickCooldown*time.Millisecond) {
			applied := c.ctx.SetSpeed(c.SpeedButton.ToggleState())
			c.SpeedButton.Sync(applied)
			c.SpeedButton.LastToggleTime = now
		}
		return ActionNone
	}
	if c.Palette.HandleClick(x, y) || x >= c.mapWidth {
		return ActionNone
	}

	if c.Palette.Armed {
		if !c.ctx.PlaceTower(c.Palette.Selected, float64(x), float64(y)) {
			c.Flash("Cannot build here")
		}
		return ActionNone
	}
	c.ctx.SelectTower(float64(x), float64(y))
	return ActionNone
}

// RightClick продаёт башню под курсором; мимо башни — снимает выбор типа.
func (c *InputController) RightClick(x, y int) {
	if x >= c.mapWidth {
		return
	}
	if !c.ctx.RemoveTower(float64(x), float64(y)) {
		c.Palette.Disarm()
	}
}

// ArmSlot выбирает тип башни по номеру клавиши (с нуля).
func (c *InputController) ArmSlot(slot int) {
	towerTypes := defs.AllTowerTypes()
	if slot < 0 || slot >= len(towerTypes) {
		return
	}
	c.Palette.Toggle(towerTypes[slot])
}

func (c *InputController) Cancel() {
	c.Palette.Disarm()
}

// Flash показывает короткое сообщение на config.MessageSeconds.
func (c *InputController) Flash(msg string) {
	c.message = msg
	c.messageLeft = config.MessageSeconds
}

func (c *InputController) Message() string {
	return c.message
}

// Update гасит сообщение по реальному времени кадра.
func (c *InputController) Update(deltaTime float64) {
	if c.messageLeft <= 0 {
		return
	}
	c.messageLeft -= deltaTime
	if c.messageLeft <= 0 {
		c.message = ""
	}
}
