package motion

// Body is the rigid body a Mover drives. Y points up.
type Body interface {
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	// ApplyForce accumulates a force for the next physics step.
	ApplyForce(x, y float64)
	PositionX() float64
	SetPositionX(x float64)
}

// Mirror is implemented by bodies that also own a visual orientation.
type Mirror interface {
	Mirror(d Direction)
}

// Walker is the read side of anything that walks: its ground state, facing
// and the events other components react to.
type Walker interface {
	Grounded() bool
	Direction() Direction
	Moving() bool
	// VerticalVelocity is negative while falling and positive while rising.
	VerticalVelocity() float64

	OnTookOff(fn func()) (unsubscribe func())
	OnLanded(fn func(speed float64)) (unsubscribe func())
	OnHorizontalDirectionChanged(fn func()) (unsubscribe func())
	OnVerticalDirectionChanged(fn func()) (unsubscribe func())
}
