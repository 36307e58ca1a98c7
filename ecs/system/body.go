package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

// moverBody exposes an entity's Chipmunk body to the motion model. Until the
// physics system has created the body, reads and writes go to the
// transform only.
type moverBody struct {
	transform *component.Transform
	phys      *component.PhysicsBody
	sprite    *component.Sprite
}

var (
	_ motion.Body   = (*moverBody)(nil)
	_ motion.Mirror = (*moverBody)(nil)
)

// NewMoverBody adapts the entity's components to motion.Body. sprite may be
// nil when the entity is not drawn.
func NewMoverBody(t *component.Transform, p *component.PhysicsBody, s *component.Sprite) motion.Body {
	return &moverBody{transform: t, phys: p, sprite: s}
}

func (b *moverBody) body() *cp.Body {
	if b.phys == nil {
		return nil
	}
	return b.phys.Body
}

func (b *moverBody) Velocity() (float64, float64) {
	body := b.body()
	if body == nil {
		return 0, 0
	}
	v := body.Velocity()
	return v.X, v.Y
}

func (b *moverBody) SetVelocity(x, y float64) {
	if body := b.body(); body != nil {
		body.SetVelocity(x, y)
	}
}

func (b *moverBody) ApplyForce(x, y float64) {
	if body := b.body(); body != nil {
		body.ApplyForceAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
	}
}

func (b *moverBody) PositionX() float64 {
	if body := b.body(); body != nil {
		return body.Position().X
	}
	if b.transform != nil {
		return b.transform.X
	}
	return 0
}

func (b *moverBody) SetPositionX(x float64) {
	if b.transform != nil {
		b.transform.X = x
	}
	if body := b.body(); body != nil {
		p := body.Position()
		body.SetPosition(cp.Vector{X: x, Y: p.Y})
	}
}

func (b *moverBody) Mirror(d motion.Direction) {
	if b.sprite != nil {
		b.sprite.FacingLeft = d == motion.Left
	}
}
