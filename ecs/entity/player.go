package entity

import (
	"fmt"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/motion"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// NewPlayerAt spawns a controllable character tuned by spec with its center
// at x, y.
func NewPlayerAt(w *ecs.World, spec prefabs.MoverSpec, x, y float64) (ecs.Entity, error) {
	cfg, err := spec.Config()
	if err != nil {
		return 0, err
	}

	e := w.CreateEntity()
	fail := func(err error) (ecs.Entity, error) {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("player: %w", err)
	}

	transform := &component.Transform{X: x, Y: y}
	phys := &component.PhysicsBody{
		Width:    spec.Physics.Width,
		Height:   spec.Physics.Height,
		Mass:     spec.Physics.Mass,
		Friction: spec.Physics.Friction,
	}
	sprite := &component.Sprite{Width: spec.Physics.Width, Height: spec.Physics.Height, Color: colornames.Tomato}
	if spec.Sprite.Color != nil {
		sprite.Color = spec.Sprite.Color.Color
	}

	if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, phys); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, sprite); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, e, component.ContactComponent, &component.Contact{}); err != nil {
		return fail(err)
	}
	threshold := &component.LongFallThreshold{Seconds: spec.Physics.LongFallSeconds}
	if err := ecs.Add(w, e, component.LongFallThresholdComponent, threshold); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return fail(err)
	}
	if err := ecs.Add(w, e, component.ControlComponent, &component.Control{}); err != nil {
		return fail(err)
	}

	player := &component.Player{
		Life:       character.NewLife(),
		Interactor: &character.Interactor{},
		SpawnX:     x,
		SpawnY:     y,
	}
	player.Subs.Add(player.Life.OnDied(func() {
		w.Events().Push(ecs.Event{Kind: ecs.EventDied, Entity: e})
	}))
	ecs.OnDestroy(w, component.PlayerComponent, releasePlayer)
	if err := ecs.Add(w, e, component.PlayerComponent, player); err != nil {
		return fail(err)
	}

	mover, err := motion.New(cfg, system.NewMoverBody(transform, phys, sprite))
	if err != nil {
		return fail(err)
	}
	if err := system.AttachMover(w, e, mover); err != nil {
		mover.Close()
		return fail(err)
	}

	return e, nil
}

// ReplacePlayer destroys old and spawns a fresh player with spec. The new
// one appears at old's spawn point, or at x, y when keepPosition is set and
// old still has a transform.
func ReplacePlayer(w *ecs.World, old ecs.Entity, spec prefabs.MoverSpec, keepPosition bool) (ecs.Entity, error) {
	x, y := 0.0, 0.0
	if p, ok := ecs.Get(w, old, component.PlayerComponent); ok {
		x, y = p.SpawnX, p.SpawnY
	}
	spawnX, spawnY := x, y
	if t, ok := ecs.Get(w, old, component.TransformComponent); ok && keepPosition {
		x, y = t.X, t.Y
	}
	w.DestroyEntity(old)

	e, err := NewPlayerAt(w, spec, x, y)
	if err != nil {
		return 0, err
	}
	if p, ok := ecs.Get(w, e, component.PlayerComponent); ok {
		p.SpawnX, p.SpawnY = spawnX, spawnY
	}
	return e, nil
}

func releasePlayer(_ ecs.Entity, p *component.Player) {
	p.Subs.Release()
	if p.Life != nil {
		p.Life.Close()
	}
	if p.Interactor != nil {
		p.Interactor.Close()
	}
}
