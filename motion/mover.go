// Package motion implements the kinematic movement model of a platformer
// character: ground/air acceleration, curve-shaped jumps, snappier falls and
// landing dampening.
//
// A Mover is driven by discrete input signals (MoveStart, MoveEnd,
// JumpStart, JumpEnd), by ground/wall/long-fall flags owned by the physics
// collaborator, and by Tick once per fixed physics step.
package motion

import (
	"math"

	"github.com/milk9111/platformer/event"
)

// AxisDeadzone is the magnitude an analog axis must exceed to count as a
// move start.
const AxisDeadzone = 0.5

// QuantizeAxis collapses an analog axis value to -1, 0 or 1.
func QuantizeAxis(v float64) int {
	switch {
	case v > AxisDeadzone:
		return 1
	case v < -AxisDeadzone:
		return -1
	default:
		return 0
	}
}

// State is a snapshot of a mover's internals.
type State struct {
	Direction       Direction
	Axis            int
	Speed           float64
	Acceleration    float64
	MaxAcceleration float64
	Grounded        bool
	Jumping         bool
	JumpTime        float64
	PrevVerticalVel float64
	StuckInWall     bool
	LongFall        bool
}

type pendingEvent struct {
	due  uint64
	fire func()
}

// Mover owns all motion state of one entity.
type Mover struct {
	cfg    Config
	body   Body
	mirror Mirror

	direction       Direction
	axis            int
	speed           float64
	acceleration    float64
	maxAcceleration float64

	grounded    bool
	jumping     bool
	jumpTime    float64
	prevVy      float64
	stuckInWall bool
	longFall    bool

	timeScale float64
	steps     uint64
	pending   []pendingEvent

	runStarted  event.Signal
	runEnded    event.Signal
	jump        event.Signal
	tookOff     event.Signal
	landed      event.Listeners[float64]
	hDirChanged event.Signal
	vDirChanged event.Signal
}

var _ Walker = (*Mover)(nil)

// New builds an airborne, motionless mover facing cfg.DefaultDirection.
// If body also implements Mirror it is oriented immediately.
func New(cfg Config, body Body) (*Mover, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNilBody
	}
	m := &Mover{
		cfg:             cfg,
		body:            body,
		direction:       cfg.DefaultDirection,
		maxAcceleration: cfg.GroundMaxAcceleration,
		timeScale:       1,
	}
	if mirror, ok := body.(Mirror); ok {
		m.mirror = mirror
		mirror.Mirror(m.direction)
	}
	return m, nil
}

func (m *Mover) Config() Config { return m.cfg }

func (m *Mover) Grounded() bool { return m.grounded }

func (m *Mover) Direction() Direction { return m.direction }

// Moving reports whether horizontal input is held.
func (m *Mover) Moving() bool { return m.axis != 0 }

func (m *Mover) VerticalVelocity() float64 {
	_, vy := m.body.Velocity()
	return vy
}

func (m *Mover) State() State {
	return State{
		Direction:       m.direction,
		Axis:            m.axis,
		Speed:           m.speed,
		Acceleration:    m.acceleration,
		MaxAcceleration: m.maxAcceleration,
		Grounded:        m.grounded,
		Jumping:         m.jumping,
		JumpTime:        m.jumpTime,
		PrevVerticalVel: m.prevVy,
		StuckInWall:     m.stuckInWall,
		LongFall:        m.longFall,
	}
}

// SetTimeScale scales the per-tick position write. 0 freezes horizontal
// travel.
func (m *Mover) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	m.timeScale = scale
}

// SetStuckInWall gates horizontal acceleration.
func (m *Mover) SetStuckInWall(stuck bool) { m.stuckInWall = stuck }

// SetLongFall marks the current airborne period as long; it is read on the
// next landing.
func (m *Mover) SetLongFall(long bool) { m.longFall = long }

// SetGrounded reports ground contact. Transitions raise Landed or TookOff.
func (m *Mover) SetGrounded(grounded bool) {
	if m.grounded == grounded {
		return
	}
	m.grounded = grounded
	if grounded {
		m.land()
	} else {
		m.tookOff.Emit()
	}
}

// MoveStart sets the horizontal axis from an analog value. Values inside
// the deadzone behave like MoveEnd.
func (m *Mover) MoveStart(value float64) {
	axis := QuantizeAxis(value)
	if axis == 0 {
		m.MoveEnd()
		return
	}
	m.axis = axis
	m.setDirection(Direction(axis))
	m.runStarted.Emit()
}

// MoveEnd drops horizontal input. Airborne momentum is kept.
func (m *Mover) MoveEnd() {
	m.axis = 0
	m.acceleration = 0
	if m.grounded {
		m.speed = 0
	}
	m.runEnded.Emit()
}

// JumpStart begins a jump when grounded. The Jump event is delivered at the
// start of the second Tick after this call, once a physics step has applied
// the initial jump velocity.
func (m *Mover) JumpStart() {
	if !m.grounded {
		return
	}
	m.jumping = true
	m.SetGrounded(false)
	m.deferEmit(m.jump.Emit)
}

// JumpEnd stops feeding the jump curve into the body.
func (m *Mover) JumpEnd() {
	m.jumping = false
}

// Tick advances the model by one physics step of dt seconds.
func (m *Mover) Tick(dt float64) {
	m.flushPending()

	if m.jumping && m.jumpTime < 1 {
		m.jumpTime = clamp(m.jumpTime+m.cfg.JumpRate*dt, 0, 1)
		m.body.SetVelocity(0, m.cfg.JumpCurve.Evaluate(m.jumpTime))
	}
	if m.jumpTime == 1 && m.jumping {
		m.JumpEnd()
	}

	if !m.grounded {
		vy := m.VerticalVelocity()
		if vy < 0 {
			m.body.ApplyForce(0, m.cfg.FallForce*dt)
		}
		if float64(m.axis)*m.speed < 0 {
			m.maxAcceleration = m.cfg.AirMaxAcceleration
		}
		if vy*m.prevVy <= 0 {
			m.vDirChanged.Emit()
		}
		m.prevVy = vy
	}

	if m.axis != 0 && !m.stuckInWall {
		m.acceleration = clamp(m.acceleration+m.cfg.AccelerationMultiplier*dt, 0, m.maxAcceleration)
		m.speed = clamp(m.speed+float64(m.axis)*m.acceleration*dt, -m.cfg.MaxSpeed, m.cfg.MaxSpeed)
	}

	m.body.SetPositionX(m.body.PositionX() + m.speed*m.timeScale)
	m.steps++
}

// Close severs every subscription and drops undelivered events. The mover
// must not be used afterwards.
func (m *Mover) Close() {
	m.runStarted.Clear()
	m.runEnded.Clear()
	m.jump.Clear()
	m.tookOff.Clear()
	m.landed.Clear()
	m.hDirChanged.Clear()
	m.vDirChanged.Clear()
	m.pending = nil
}

func (m *Mover) OnRunStarted(fn func()) func() { return m.runStarted.Subscribe(fn) }

func (m *Mover) OnRunEnded(fn func()) func() { return m.runEnded.Subscribe(fn) }

func (m *Mover) OnJump(fn func()) func() { return m.jump.Subscribe(fn) }

func (m *Mover) OnTookOff(fn func()) func() { return m.tookOff.Subscribe(fn) }

// OnLanded handlers receive the body's speed at impact.
func (m *Mover) OnLanded(fn func(speed float64)) func() { return m.landed.Subscribe(fn) }

func (m *Mover) OnHorizontalDirectionChanged(fn func()) func() { return m.hDirChanged.Subscribe(fn) }

func (m *Mover) OnVerticalDirectionChanged(fn func()) func() { return m.vDirChanged.Subscribe(fn) }

func (m *Mover) setDirection(d Direction) {
	if m.direction == d || !d.Valid() {
		return
	}
	m.direction = d
	if m.mirror != nil {
		m.mirror.Mirror(d)
	}
	m.hDirChanged.Emit()
}

func (m *Mover) land() {
	m.maxAcceleration = m.cfg.GroundMaxAcceleration
	m.acceleration = math.Min(m.acceleration, m.maxAcceleration)

	// No input, or input against the slide: stop dead.
	if float64(m.axis)*m.speed <= 0 {
		m.speed = 0
	} else if limit := m.cfg.LongFallSpeed(); m.longFall && math.Abs(m.speed) > limit {
		m.speed = math.Copysign(limit, m.speed)
		m.acceleration = 0
	}

	m.jumping = false
	m.jumpTime = 0
	m.prevVy = 0

	vx, vy := m.body.Velocity()
	m.landed.Emit(math.Hypot(vx, vy))
}

func (m *Mover) deferEmit(fire func()) {
	m.pending = append(m.pending, pendingEvent{due: m.steps + 1, fire: fire})
}

func (m *Mover) flushPending() {
	if len(m.pending) == 0 {
		return
	}
	ready := m.pending[:0:0]
	keep := m.pending[:0]
	for _, p := range m.pending {
		if p.due <= m.steps {
			ready = append(ready, p)
		} else {
			keep = append(keep, p)
		}
	}
	m.pending = keep
	for _, p := range ready {
		p.fire()
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
