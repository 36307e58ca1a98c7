// Package event provides listener lists with scoped unsubscribe.
//
// Listeners are invoked synchronously, in subscription order, on the
// goroutine that calls Emit. Handlers may unsubscribe themselves (or others)
// while an Emit is in progress; the change applies from the next Emit.
package event

// Listeners is an ordered list of handlers receiving a payload of type T.
// The zero value is ready to use.
type Listeners[T any] struct {
	nextID   uint64
	handlers []handler[T]
}

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a func that removes it again.
// Calling the returned func more than once is a no-op.
func (l *Listeners[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if l == nil || fn == nil {
		return func() {}
	}
	l.nextID++
	id := l.nextID
	l.handlers = append(l.handlers, handler[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

// Emit calls every registered handler with v.
func (l *Listeners[T]) Emit(v T) {
	if l == nil || len(l.handlers) == 0 {
		return
	}
	snapshot := append([]handler[T](nil), l.handlers...)
	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len reports the number of registered handlers.
func (l *Listeners[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.handlers)
}

// Clear drops every handler. Previously returned unsubscribe funcs stay
// safe to call.
func (l *Listeners[T]) Clear() {
	if l == nil {
		return
	}
	l.handlers = nil
}

func (l *Listeners[T]) remove(id uint64) {
	for i, h := range l.handlers {
		if h.id == id {
			l.handlers = append(l.handlers[:i:i], l.handlers[i+1:]...)
			return
		}
	}
}

// Signal is a payload-free Listeners.
type Signal struct {
	l Listeners[struct{}]
}

// Subscribe registers fn and returns its unsubscribe func.
func (s *Signal) Subscribe(fn func()) (unsubscribe func()) {
	if s == nil || fn == nil {
		return func() {}
	}
	return s.l.Subscribe(func(struct{}) { fn() })
}

// Emit calls every registered handler.
func (s *Signal) Emit() {
	if s == nil {
		return
	}
	s.l.Emit(struct{}{})
}

// Len reports the number of registered handlers.
func (s *Signal) Len() int {
	if s == nil {
		return 0
	}
	return s.l.Len()
}

// Clear drops every handler.
func (s *Signal) Clear() {
	if s == nil {
		return
	}
	s.l.Clear()
}

// Subscriptions collects unsubscribe funcs so they can be released together,
// typically when the subscriber is torn down.
type Subscriptions struct {
	cancels []func()
}

// Add keeps an unsubscribe func for a later Release.
func (s *Subscriptions) Add(unsubscribe func()) {
	if s == nil || unsubscribe == nil {
		return
	}
	s.cancels = append(s.cancels, unsubscribe)
}

// Release calls every collected unsubscribe func once, in reverse order.
func (s *Subscriptions) Release() {
	if s == nil {
		return
	}
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
	s.cancels = nil
}
