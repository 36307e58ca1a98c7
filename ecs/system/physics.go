package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	// minimum upward component of a contact normal counted as ground
	groundNormalY = 0.7
	// minimum sideways component counted as a wall
	wallNormalX = 0.7
	// bodies rising faster than this are not grounded even when touching
	groundedRiseSpeed = 0.5
)

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

// PhysicsSystem owns the Chipmunk2D space. Each update it creates bodies for
// new entities, drops bodies of destroyed ones, steps the space, copies body
// positions into transforms and derives Contact from arbiters.
type PhysicsSystem struct {
	DT        float64
	TimeScale float64

	space  *cp.Space
	bodies map[ecs.Entity]*bodyInfo
	solids map[ecs.Entity]*cp.Shape
}

func NewPhysicsSystem(gravity, dt float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		DT:        dt,
		TimeScale: 1,
		space:     space,
		bodies:    make(map[ecs.Entity]*bodyInfo),
		solids:    make(map[ecs.Entity]*cp.Shape),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity changes the vertical gravity of the space.
func (ps *PhysicsSystem) SetGravity(g float64) {
	ps.space.SetGravity(cp.Vector{X: 0, Y: g})
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.prune(w)
	ps.syncSolids(w)
	ps.syncBodies(w)

	dt := ps.DT * ps.TimeScale
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)

	ps.syncTransforms(w)
	ps.updateContacts(w, dt)
}

func (ps *PhysicsSystem) prune(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.bodies, e)
	}
	for e, shape := range ps.solids {
		if w.IsAlive(e) && ecs.Has(w, e, component.SolidComponent) {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.solids, e)
	}
}

func (ps *PhysicsSystem) syncSolids(w *ecs.World) {
	ecs.ForEach(w, component.SolidComponent, func(e ecs.Entity, solid *component.Solid) {
		if _, ok := ps.solids[e]; ok {
			return
		}
		bb := cp.BB{L: solid.X, B: solid.Y, R: solid.X + solid.W, T: solid.Y + solid.H}
		shape := ps.space.AddShape(cp.NewBox2(ps.space.StaticBody, bb, 0))
		shape.SetFriction(1)
		shape.SetElasticity(0)
		solid.Shape = shape
		ps.solids[e] = shape
	})
}

func (ps *PhysicsSystem) syncBodies(w *ecs.World) {
	ecs.ForEach(w, component.PhysicsBodyComponent, func(e ecs.Entity, phys *component.PhysicsBody) {
		if _, ok := ps.bodies[e]; ok {
			return
		}
		mass := phys.Mass
		if mass <= 0 {
			mass = 1
		}
		body := ps.space.AddBody(cp.NewBody(mass, cp.INFINITY))
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
			body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
		shape := ps.space.AddShape(cp.NewBox(body, phys.Width, phys.Height, 0))
		shape.SetFriction(phys.Friction)
		shape.SetElasticity(0)

		phys.Body = body
		phys.Shape = shape
		ps.bodies[e] = &bodyInfo{body: body, shape: shape}
		log.Printf("physics: created body for entity %s (%.2fx%.2f, mass %.2f)", e, phys.Width, phys.Height, mass)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		p := info.body.Position()
		t.X = p.X
		t.Y = p.Y
	}
}

func (ps *PhysicsSystem) updateContacts(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.ContactComponent, func(e ecs.Entity, contact *component.Contact) {
		info, ok := ps.bodies[e]
		if !ok {
			return
		}

		ground := cp.Vector{}
		wall := 0
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			// normal pointing from the other shape into this body
			n := arb.Normal().Neg()
			if n.Y > ground.Y {
				ground = n
			}
			switch {
			case n.X > wallNormalX:
				wall = -1
			case n.X < -wallNormalX:
				wall = 1
			}
		})

		vy := info.body.Velocity().Y
		contact.Grounded = ground.Y > groundNormalY && vy <= groundedRiseSpeed
		contact.WallSide = wall

		threshold := 0.0
		if th, ok := ecs.Get(w, e, component.LongFallThresholdComponent); ok {
			threshold = th.Seconds
		}
		if contact.Grounded {
			contact.LongFall = threshold > 0 && contact.FallTime >= threshold
			contact.FallTime = 0
			return
		}
		if vy < 0 {
			contact.FallTime += dt
		}
		contact.LongFall = threshold > 0 && contact.FallTime >= threshold
	})
}
