package component

import (
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/event"
)

// Player carries the non-movement character state.
type Player struct {
	Life       *character.Life
	Interactor *character.Interactor
	SpawnX     float64
	SpawnY     float64
	Subs       event.Subscriptions
}

var PlayerComponent = NewComponent[Player]("player")

// Sign is an interactable box showing a message.
type Sign struct {
	X, Y, W, H float64
	Message    string
	Reads      int
}

var SignComponent = NewComponent[Sign]("sign")
