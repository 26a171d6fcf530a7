// internal/system/state.go
package system

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// StateSystem следит за концом забега.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update переводит игру в GameOverPhase, когда жизни кончились.
// GameOver отправляется ровно один раз: повторные вызовы ничего не делают.
func (s *StateSystem) Update() {
	if s.ecs.Phase == component.GameOverPhase || s.ecs.Economy.Lives > 0 {
		return
	}
	s.ecs.Phase = component.GameOverPhase
	log.Printf("Game over on wave %d, score %d", s.ecs.Wave.Number, s.ecs.Economy.Score)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: s.ecs.Economy.Score, Wave: s.ecs.Wave.Number},
	})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
