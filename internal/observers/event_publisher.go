package observers

import (
	"sync"

	"github.com/Sculsor/Macathon2026/internal/model"
)

// EventObserver - интерфейс для конкретных наблюдателей
type EventObserver interface {
	OnReceiptEvent(event model.ReceiptEvent)
}

type EventPublisher interface {
	Publish(event model.ReceiptEvent)
	Register(observer EventObserver)
}

type EventPublisherImpl struct {
	observers []EventObserver
	mu        sync.RWMutex
}

func NewEventPublisher(observers ...EventObserver) *EventPublisherImpl {
	p := &EventPublisherImpl{
		observers: make([]EventObserver, 0, len(observers)),
	}
	for _, o := range observers {
		p.Register(o)
	}
	return p
}

// Publish раздает событие наблюдателям в порядке регистрации
func (p *EventPublisherImpl) Publish(event model.ReceiptEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, observer := range p.observers {
		observer.OnReceiptEvent(event)
	}
}

func (p *EventPublisherImpl) Register(observer EventObserver) {
	if observer == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}
