package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are created by the physics system on first sight.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]("physics_body")

// Solid is a static axis-aligned box of level geometry. X/Y is the
// bottom-left corner.
type Solid struct {
	X, Y, W, H float64
	Shape      *cp.Shape
}

var SolidComponent = NewComponent[Solid]("solid")

// Contact is what the physics step found touching a body.
type Contact struct {
	Grounded bool
	// WallSide is -1 for a wall on the left, 1 on the right, 0 for none.
	WallSide int
	// FallTime is seconds spent airborne with negative vertical velocity.
	FallTime float64
	LongFall bool
}

var ContactComponent = NewComponent[Contact]("contact")

// LongFallThreshold configures when Contact.LongFall turns on.
type LongFallThreshold struct {
	Seconds float64
}

var LongFallThresholdComponent = NewComponent[LongFallThreshold]("long_fall_threshold")
