package system

import (
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InteractSystem keeps each player's Interactor pointed at the sign its
// collider overlaps.
type InteractSystem struct {
	touching map[ecs.Entity]ecs.Entity
}

func NewInteractSystem() *InteractSystem {
	return &InteractSystem{touching: make(map[ecs.Entity]ecs.Entity)}
}

type signTouch struct {
	sign *component.Sign
}

func (s signTouch) Interact() {
	s.sign.Reads++
	log.Printf("sign: %q", s.sign.Message)
}

func (s *InteractSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for p := range s.touching {
		if !w.IsAlive(p) {
			delete(s.touching, p)
		}
	}

	signs := w.Query(component.SignComponent.Kind().ID())
	players := w.Query(
		component.PlayerComponent.Kind().ID(),
		component.TransformComponent.Kind().ID(),
		component.PhysicsBodyComponent.Kind().ID(),
	)
	for _, p := range players {
		player, _ := ecs.Get(w, p, component.PlayerComponent)
		t, _ := ecs.Get(w, p, component.TransformComponent)
		phys, _ := ecs.Get(w, p, component.PhysicsBodyComponent)
		if player.Interactor == nil {
			continue
		}

		l, b := t.X-phys.Width/2, t.Y-phys.Height/2
		r, top := l+phys.Width, b+phys.Height

		var found ecs.Entity
		var foundSign *component.Sign
		for _, se := range signs {
			sign, _ := ecs.Get(w, se, component.SignComponent)
			if l < sign.X+sign.W && r > sign.X && b < sign.Y+sign.H && top > sign.Y {
				found, foundSign = se, sign
				break
			}
		}

		prev := s.touching[p]
		if found == prev {
			continue
		}
		if prev.Valid() {
			player.Interactor.TouchEnd()
			w.Events().Push(ecs.Event{Kind: ecs.EventInteractableLeft, Entity: p})
		}
		if found.Valid() {
			player.Interactor.TouchStart(signTouch{sign: foundSign})
			w.Events().Push(ecs.Event{Kind: ecs.EventInteractableTouched, Entity: p})
			s.touching[p] = found
		} else {
			delete(s.touching, p)
		}
	}
}
