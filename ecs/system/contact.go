package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ContactSystem forwards physics contact flags into movers. Long fall and
// wall state are set before grounding so a landing sees them.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (c *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ents := w.Query(component.ContactComponent.Kind().ID(), component.MoverComponent.Kind().ID())
	for _, e := range ents {
		contact, _ := ecs.Get(w, e, component.ContactComponent)
		mover, _ := ecs.Get(w, e, component.MoverComponent)
		m := mover.Motion
		if m == nil {
			continue
		}

		axis := m.State().Axis
		m.SetStuckInWall(contact.WallSide != 0 && contact.WallSide == axis)
		m.SetLongFall(contact.LongFall)
		m.SetGrounded(contact.Grounded)
	}
}
