package component

import (
	"github.com/milk9111/platformer/event"
	"github.com/milk9111/platformer/motion"
)

// Mover attaches a motion model to an entity. Subs holds the listeners the
// world registered on it; both are released when the entity is destroyed.
type Mover struct {
	Motion *motion.Mover
	Subs   event.Subscriptions
}

var MoverComponent = NewComponent[Mover]("mover")
