package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// World owns entities and their component storage.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	names     map[component.ComponentID]string
	onDestroy map[component.ComponentID]func(e Entity, v any)
	events    EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		names:     make(map[component.ComponentID]string),
		onDestroy: make(map[component.ComponentID]func(Entity, any)),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity runs destroy hooks for every component the entity carries,
// drops them and frees the slot. It reports whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for id, store := range w.stores {
		v, ok := store.Remove(e)
		if !ok {
			continue
		}
		if hook := w.onDestroy[id]; hook != nil {
			hook(e, v)
		}
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, name string, v any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if _, ok := w.names[id]; !ok {
		w.names[id] = name
	}
	w.store(id, true).Set(e, v)
	return nil
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	s := w.store(id, false)
	if s == nil {
		return false
	}
	_, ok := s.Remove(e)
	return ok
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(id, false)
	if s == nil || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// Query returns the live entities carrying every listed component id.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return intersect(sets)
}

// First returns one entity carrying every listed component id.
func (w *World) First(ids ...component.ComponentID) (Entity, bool) {
	ents := w.Query(ids...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
