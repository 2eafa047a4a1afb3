package provider

import (
	"context"
	"sync"
)

type Listener func(ctx context.Context, args ...any)

// Observers is an in-process Emitter keyed by event name.
type Observers struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

func NewObservers() *Observers {
	return &Observers{
		listeners: make(map[string][]Listener),
	}
}

func (o *Observers) On(event string, listener Listener) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.listeners[event] = append(o.listeners[event], listener)
}

func (o *Observers) Emit(ctx context.Context, event string, args ...any) {
	o.mu.RLock()
	listeners := append([]Listener(nil), o.listeners[event]...)
	o.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, args...)
	}
}

// Emitters fans a notification out to every emitter in order.
type Emitters []Emitter

func (e Emitters) Emit(ctx context.Context, event string, args ...any) {
	for _, emitter := range e {
		if emitter != nil {
			emitter.Emit(ctx, event, args...)
		}
	}
}
