package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if w.EntityCount() != c.create-1 {
					t.Fatalf("expected %d live entities, got %d", c.create-1, w.EntityCount())
				}
			}
		})
	}
}

func TestWorldRecyclesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)
	fresh := w.CreateEntity()

	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", fresh, old)
	}
	if fresh == old || w.IsAlive(old) {
		t.Fatalf("stale handle must not alias the new entity")
	}

	h := component.NewComponent[int]("int")
	if err := Add(w, old, h, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]("int")
	h2 := component.NewComponent[string]("string")

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1) {
					t.Fatalf("e2 should not have int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				got := toSet(w.Query(h2.Kind().ID()))
				if len(got) != 2 {
					t.Fatalf("expected 2 entities in query, got %d", len(got))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) && Remove(w, e2, h2) },
		},
		{
			name:  "mutate_in_place",
			setup: func() error { return Add(w, e2, h1, intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1)
				*v = 42
				again, _ := Get(w, e2, h1)
				if *again != 42 {
					t.Fatalf("expected in-place mutation to stick, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, h1, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]("a")
	kb := component.NewComponent[int]("b")
	kc := component.NewComponent[int]("c")

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, step := range []struct {
		e Entity
		h component.ComponentHandle[int]
	}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}} {
		if err := Add(w, step.e, step.h, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	res := w.Query(ka.Kind().ID(), kb.Kind().ID(), kc.Kind().ID())
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
	if first, ok := w.First(kb.Kind().ID()); !ok || (first != e2 && first != e3) {
		t.Fatalf("unexpected First result %v %v", first, ok)
	}

	w.DestroyEntity(e2)
	if res := w.Query(ka.Kind().ID(), kb.Kind().ID()); len(res) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", res)
	}
	unused := component.NewComponent[int]("unused")
	if res := w.Query(ka.Kind().ID(), unused.Kind().ID()); res != nil {
		t.Fatalf("expected nil for unknown component, got %v", res)
	}
}

func TestForEachAndDestroyHook(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]("int")

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	_ = Add(w, e1, h, intPtr(1))
	_ = Add(w, e3, h, intPtr(3))

	var destroyed []int
	OnDestroy(w, h, func(_ Entity, v *int) { destroyed = append(destroyed, *v) })

	sum := 0
	ForEach(w, h, func(e Entity, v *int) {
		sum += *v
		w.DestroyEntity(e)
	})

	if sum != 4 {
		t.Fatalf("expected ForEach to visit e1 and e3, sum=%d", sum)
	}
	if len(destroyed) != 2 {
		t.Fatalf("expected destroy hook for both entities, got %v", destroyed)
	}
	if !w.IsAlive(e2) || w.EntityCount() != 1 {
		t.Fatalf("expected only e2 to survive")
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	var seen []EventKind
	s := NewScheduler(
		SystemFunc(func(w *World) { w.Events().Push(Event{Kind: EventJump}) }),
		nil,
		SystemFunc(func(w *World) {
			w.Events().Each(func(evt Event) { seen = append(seen, evt.Kind) })
		}),
	)

	s.Update(w)

	if len(seen) != 1 || seen[0] != EventJump {
		t.Fatalf("expected later system to see jump event, got %v", seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue flushed after update")
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems should be skipped")
	}
}
