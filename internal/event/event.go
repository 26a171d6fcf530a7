// internal/event/event.go
package event

import "slices"

// EventType — имя события движка
type EventType string

// Event — событие и его полезная нагрузка (EnemyData, TowerData, WaveData, ...).
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки.
// Списки подписчиков копируются при изменении, поэтому слушатель может
// отписаться прямо из OnEvent: текущая рассылка дойдёт до конца по старому списку.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на один тип событий.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	current := d.listeners[eventType]
	next := make([]Listener, 0, len(current)+1)
	d.listeners[eventType] = append(append(next, current...), listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает подписку; возвращает false, если её не было.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) bool {
	current := d.listeners[eventType]
	i := slices.Index(current, listener)
	if i < 0 {
		return false
	}
	next := slices.Delete(slices.Clone(current), i, i+1)
	if len(next) == 0 {
		delete(d.listeners, eventType)
	} else {
		d.listeners[eventType] = next
	}
	return true
}

// UnsubscribeAll снимает listener со всех типов событий.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for t := range d.listeners {
		d.Unsubscribe(t, listener)
	}
}

// ListenerCount — сколько подписчиков у типа события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}

// Dispatch отправляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
