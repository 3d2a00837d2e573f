// Package objpool типизированная обертка над sync.Pool для объектов,
// которые умеют сбрасывать свое состояние.
package objpool

import "sync"

// Resettable объект возвращается в пул только после Reset
type Resettable interface {
	Reset()
}

// Pool переиспользует объекты T. retain решает, стоит ли оставлять объект:
// буфер, разросшийся под один большой ответ, лучше отдать сборщику мусора.
type Pool[T Resettable] struct {
	pool   sync.Pool
	retain func(T) bool
}

// New retain == nil оставляет в пуле все объекты
func New[T Resettable](newFunc func() T, retain func(T) bool) *Pool[T] {
	p := &Pool[T]{retain: retain}
	p.pool.New = func() any { return newFunc() }
	return p
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put после вызова объект использовать нельзя
func (p *Pool[T]) Put(obj T) {
	if p.retain != nil && !p.retain(obj) {
		return
	}
	obj.Reset()
	p.pool.Put(obj)
}
