package character

import "github.com/milk9111/platformer/event"

// Interactable is something a character can use while touching it.
type Interactable interface {
	Interact()
}

// Interactor remembers the interactable currently touched.
type Interactor struct {
	touched      Interactable
	touchStarted event.Signal
	touchEnded   event.Signal
}

// Touching reports whether an interactable is in reach.
func (i *Interactor) Touching() bool { return i.touched != nil }

// TouchStart replaces the touched interactable.
func (i *Interactor) TouchStart(it Interactable) {
	if it == nil {
		return
	}
	i.touched = it
	i.touchStarted.Emit()
}

// TouchEnd forgets the touched interactable, whichever it was.
func (i *Interactor) TouchEnd() {
	if i.touched == nil {
		return
	}
	i.touched = nil
	i.touchEnded.Emit()
}

// Interact uses the touched interactable, reporting whether there was one.
func (i *Interactor) Interact() bool {
	if i.touched == nil {
		return false
	}
	i.touched.Interact()
	return true
}

func (i *Interactor) OnTouchStarted(fn func()) func() { return i.touchStarted.Subscribe(fn) }

func (i *Interactor) OnTouchEnded(fn func()) func() { return i.touchEnded.Subscribe(fn) }

func (i *Interactor) Close() {
	i.touched = nil
	i.touchStarted.Clear()
	i.touchEnded.Clear()
}
