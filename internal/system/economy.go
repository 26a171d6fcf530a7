// internal/system/economy.go
package system

import (
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// EconomySystem — единственное место, где меняются деньги, жизни и очки.
// Инварианты (неотрицательные деньги и жизни) проверяются здесь, а не у вызывающих.
type EconomySystem struct {
	ecs *entity.ECS
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{ecs: ecs}
	eventDispatcher.SubscribeAll(es, event.EnemyKilled, event.EnemyReachedEnd)
	return es
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyData); ok {
			s.CreditKill(data.Reward)
		}
	case event.EnemyReachedEnd:
		s.LoseLife()
	}
}

// Reset выставляет стартовые деньги и жизни.
func (s *EconomySystem) Reset(money, lives int) {
	s.ecs.Economy.Money = max(0, money)
	s.ecs.Economy.Lives = max(0, lives)
	s.ecs.Economy.Score = 0
}

func (s *EconomySystem) CanAfford(cost int) bool {
	return cost >= 0 && s.ecs.Economy.Money >= cost
}

// Spend списывает cost, если денег хватает. Иначе ничего не меняет.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.ecs.Economy.Money -= cost
	return true
}

// Refund возвращает деньги за проданную башню.
func (s *EconomySystem) Refund(amount int) {
	if amount <= 0 {
		return
	}
	s.ecs.Economy.Money += amount
}

// CreditKill начисляет награду за убийство и в деньги, и в очки.
func (s *EconomySystem) CreditKill(reward int) {
	if reward <= 0 {
		return
	}
	s.ecs.Economy.Money += reward
	s.ecs.Economy.Score += reward
}

// LoseLife снимает одну жизнь; ниже нуля жизни не опускаются.
func (s *EconomySystem) LoseLife() {
	if s.ecs.Economy.Lives > 0 {
		s.ecs.Economy.Lives--
	}
}
