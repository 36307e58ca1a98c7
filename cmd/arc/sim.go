package main

import (
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
)

const (
	simDT       = 1.0 / 60
	maxSimTicks = 600
)

// flatBody is a point mass over an infinite floor at y=0. Forces are
// integrated over the following step and then cleared, as in Chipmunk.
type flatBody struct {
	x, y    float64
	vx, vy  float64
	fx, fy  float64
	mass    float64
	gravity float64
}

func (b *flatBody) Velocity() (float64, float64) { return b.vx, b.vy }

func (b *flatBody) SetVelocity(x, y float64) { b.vx, b.vy = x, y }

func (b *flatBody) ApplyForce(x, y float64) {
	b.fx += x
	b.fy += y
}

func (b *flatBody) PositionX() float64 { return b.x }

func (b *flatBody) SetPositionX(x float64) { b.x = x }

// step integrates one tick and reports whether the body touches the floor.
// Impact velocity survives until the next step so a landing can read it.
func (b *flatBody) step(dt float64) bool {
	if b.y <= 0 && b.vy < 0 {
		b.vy = 0
	}
	b.vx += b.fx / b.mass * dt
	b.vy += (b.gravity + b.fy/b.mass) * dt
	b.fx, b.fy = 0, 0
	b.x += b.vx * dt
	b.y += b.vy * dt
	if b.y <= 0 {
		b.y = 0
		return true
	}
	return false
}

type point struct {
	X, Y float64
}

type arc struct {
	Points    []point
	Apex      point
	Ticks     int
	JumpTick  int
	LandSpeed float64
}

// simulateArc jumps from standing while holding right and keeps the jump
// button down for holdTicks. It stops on landing or after maxSimTicks.
func simulateArc(spec prefabs.MoverSpec, holdTicks int) (arc, error) {
	cfg, err := spec.Config()
	if err != nil {
		return arc{}, err
	}
	mass := spec.Physics.Mass
	if mass <= 0 {
		mass = 1
	}
	body := &flatBody{mass: mass, gravity: spec.Physics.Gravity}
	m, err := motion.New(cfg, body)
	if err != nil {
		return arc{}, err
	}
	defer m.Close()

	var out arc
	landed := false
	m.OnLanded(func(speed float64) {
		landed = true
		out.LandSpeed = speed
	})
	m.OnJump(func() { out.JumpTick = out.Ticks })

	m.SetGrounded(true)
	m.MoveStart(1)
	m.JumpStart()
	landed = false

	for out.Ticks = 0; out.Ticks < maxSimTicks; out.Ticks++ {
		if out.Ticks == holdTicks {
			m.JumpEnd()
		}
		m.Tick(simDT)
		onFloor := body.step(simDT)
		p := point{X: body.x, Y: body.y}
		out.Points = append(out.Points, p)
		if p.Y > out.Apex.Y {
			out.Apex = p
		}
		m.SetGrounded(onFloor)
		if landed {
			out.Ticks++
			break
		}
	}
	return out, nil
}
