package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// MoverSystem advances every motion model by one fixed step.
type MoverSystem struct {
	DT        float64
	TimeScale float64
}

func NewMoverSystem(dt float64) *MoverSystem {
	return &MoverSystem{DT: dt, TimeScale: 1}
}

func (s *MoverSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.MoverComponent, func(_ ecs.Entity, mover *component.Mover) {
		if mover.Motion == nil {
			return
		}
		mover.Motion.SetTimeScale(s.TimeScale)
		mover.Motion.Tick(s.DT * s.TimeScale)
	})
}

// AttachMover stores m on e, forwards its events into the world queue and
// arranges for Close when e is destroyed.
func AttachMover(w *ecs.World, e ecs.Entity, m *motion.Mover) error {
	comp := &component.Mover{Motion: m}
	push := func(kind ecs.EventKind) func() {
		return func() { w.Events().Push(ecs.Event{Kind: kind, Entity: e}) }
	}
	comp.Subs.Add(m.OnRunStarted(push(ecs.EventRunStarted)))
	comp.Subs.Add(m.OnRunEnded(push(ecs.EventRunEnded)))
	comp.Subs.Add(m.OnJump(push(ecs.EventJump)))
	comp.Subs.Add(m.OnTookOff(push(ecs.EventTookOff)))
	comp.Subs.Add(m.OnHorizontalDirectionChanged(push(ecs.EventDirectionChanged)))
	comp.Subs.Add(m.OnVerticalDirectionChanged(push(ecs.EventApex)))
	comp.Subs.Add(m.OnLanded(func(speed float64) {
		w.Events().Push(ecs.Event{Kind: ecs.EventLanded, Entity: e, Value: speed})
	}))

	ecs.OnDestroy(w, component.MoverComponent, releaseMover)
	return ecs.Add(w, e, component.MoverComponent, comp)
}

func releaseMover(_ ecs.Entity, mover *component.Mover) {
	mover.Subs.Release()
	if mover.Motion != nil {
		mover.Motion.Close()
	}
}
