package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add attaches value to e. Components are stored by pointer so systems can
// mutate them in place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	kind := handle.Kind()
	return w.addComponent(e, kind.ID(), kind.Name(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := w.getComponent(e, handle.Kind().ID())
	return ok
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.getComponent(e, handle.Kind().ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn for every entity carrying the component. Entities added
// or destroyed by fn take effect after the loop.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID(), false)
	if s == nil {
		return
	}
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// OnDestroy registers fn to run when an entity carrying the component is
// destroyed. A later registration replaces an earlier one.
func OnDestroy[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil {
		return
	}
	id := handle.Kind().ID()
	if fn == nil {
		delete(w.onDestroy, id)
		return
	}
	w.onDestroy[id] = func(e Entity, v any) {
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}
