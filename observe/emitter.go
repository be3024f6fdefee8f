package observe

import (
	"slices"
	"sync"
)

// Handler receives the value carried by an event.
type Handler func(v any)

// Observable is the publish/subscribe capability a watch node notifies
// through.
type Observable interface {
	Subscribe(event string, h Handler) Subscription
	UnsubscribeAll(events ...string)
	Emit(event string, v any)
}

// Subscription is a handle on one registered handler.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the handler. It is safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Emitter is a synchronous Observable. Handlers of an event run on the
// emitting goroutine in registration order, and Emit returns only once
// all of them have returned.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]entry
	nextID   uint64
}

type entry struct {
	id uint64
	h  Handler
}

func NewEmitter() *Emitter {
	return &Emitter{handlers: map[string][]entry{}}
}

func (e *Emitter) Subscribe(event string, h Handler) Subscription {
	if e == nil || h == nil {
		return Subscription{}
	}
	e.mu.Lock()
	if e.handlers == nil {
		e.handlers = map[string][]entry{}
	}
	e.nextID++
	id := e.nextID
	e.handlers[event] = append(e.handlers[event], entry{id: id, h: h})
	e.mu.Unlock()

	return Subscription{cancel: func() {
		e.remove(event, id)
	}}
}

func (e *Emitter) remove(event string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	hs := e.handlers[event]
	i := slices.IndexFunc(hs, func(x entry) bool { return x.id == id })
	if i == -1 {
		return
	}
	// copy so that a concurrent Emit snapshot is left intact
	hs = slices.Delete(slices.Clone(hs), i, i+1)
	if len(hs) == 0 {
		delete(e.handlers, event)
		return
	}
	e.handlers[event] = hs
}

// UnsubscribeAll removes every handler of the named events, or of all
// events when no name is given.
func (e *Emitter) UnsubscribeAll(events ...string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(events) == 0 {
		e.handlers = map[string][]entry{}
		return
	}
	for _, ev := range events {
		delete(e.handlers, ev)
	}
}

// Emit calls the handlers registered for event with v. Handlers added or
// removed while Emit runs take effect from the next Emit.
func (e *Emitter) Emit(event string, v any) {
	if e == nil {
		return
	}
	e.mu.Lock()
	hs := e.handlers[event]
	e.mu.Unlock()

	for _, x := range hs {
		x.h(v)
	}
}

// Count returns the number of handlers registered for event.
func (e *Emitter) Count(event string) int {
	if e == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[event])
}

// Events returns the names of events with at least one handler, sorted.
func (e *Emitter) Events() []string {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	res := make([]string, 0, len(e.handlers))
	for ev := range e.handlers {
		res = append(res, ev)
	}
	slices.Sort(res)
	return res
}
