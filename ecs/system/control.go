package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// ControlSystem turns sampled input into discrete mover signals: a change of
// the quantized axis becomes MoveStart/MoveEnd, jump edges become
// JumpStart/JumpEnd and an interact press uses the touched interactable.
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (c *ControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ents := w.Query(
		component.InputComponent.Kind().ID(),
		component.ControlComponent.Kind().ID(),
		component.MoverComponent.Kind().ID(),
	)
	for _, e := range ents {
		input, _ := ecs.Get(w, e, component.InputComponent)
		ctl, _ := ecs.Get(w, e, component.ControlComponent)
		mover, _ := ecs.Get(w, e, component.MoverComponent)
		if mover.Motion == nil {
			continue
		}
		m := mover.Motion

		if axis := motion.QuantizeAxis(input.MoveX); axis != ctl.Axis {
			ctl.Axis = axis
			if axis == 0 {
				m.MoveEnd()
			} else {
				m.MoveStart(input.MoveX)
			}
		}

		switch {
		case input.Jump && !ctl.Jump:
			m.JumpStart()
		case !input.Jump && ctl.Jump:
			m.JumpEnd()
		}
		ctl.Jump = input.Jump

		if input.Interact && !ctl.Interact {
			if player, ok := ecs.Get(w, e, component.PlayerComponent); ok && player.Interactor != nil {
				if player.Interactor.Interact() {
					w.Events().Push(ecs.Event{Kind: ecs.EventInteracted, Entity: e})
				}
			}
		}
		ctl.Interact = input.Interact
	}
}
