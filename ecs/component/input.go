package component

// Input stores the raw device state sampled this frame.
type Input struct {
	MoveX    float64
	Jump     bool
	Interact bool
}

var InputComponent = NewComponent[Input]("input")

// Control remembers what was last forwarded to the mover so only
// transitions become signals.
type Control struct {
	Axis     int
	Jump     bool
	Interact bool
}

var ControlComponent = NewComponent[Control]("control")
