package component

import "image/color"

// Sprite is a flat-colored box drawn around the transform, mirrored by
// facing.
type Sprite struct {
	Width      float64
	Height     float64
	Color      color.Color
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]("sprite")
