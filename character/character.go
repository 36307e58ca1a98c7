// Package character holds the non-movement parts of a playable character:
// liveness and touching interactables.
package character

import "github.com/milk9111/platformer/event"

// Character is anything that can die.
type Character interface {
	Alive() bool
	OnDied(fn func()) (unsubscribe func())
}

// Life tracks whether a character is alive. The zero value is dead; use
// NewLife.
type Life struct {
	alive bool
	died  event.Signal
}

var _ Character = (*Life)(nil)

func NewLife() *Life {
	return &Life{alive: true}
}

func (l *Life) Alive() bool { return l.alive }

// Kill marks the character dead and raises Died once.
func (l *Life) Kill() {
	if !l.alive {
		return
	}
	l.alive = false
	l.died.Emit()
}

func (l *Life) OnDied(fn func()) func() { return l.died.Subscribe(fn) }

func (l *Life) Close() { l.died.Clear() }
