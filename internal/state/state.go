// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран хоста: меню, игра, пауза, итог забега.
// Update получает реальное время кадра в секундах.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран и вызывает Exit/Enter при смене.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current returns the active state, or nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState переключает экран. Повторная установка того же экрана ничего не делает,
// иначе пауза сняла бы и снова поставила паузу движку.
func (sm *StateMachine) SetState(next State) {
	if next == sm.current {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
