package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// LoadLevelToWorld creates a Solid entity per level box and a Sign entity
// per sign.
func LoadLevelToWorld(w *ecs.World, lvl prefabs.LevelSpec) ([]ecs.Entity, error) {
	created := make([]ecs.Entity, 0, len(lvl.Solids)+len(lvl.Signs))
	for i, b := range lvl.Solids {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.SolidComponent, &component.Solid{X: b.X, Y: b.Y, W: b.W, H: b.H}); err != nil {
			return created, fmt.Errorf("level %s: solid %d: %w", lvl.Name, i, err)
		}
		created = append(created, e)
	}
	for i, s := range lvl.Signs {
		e := w.CreateEntity()
		sign := &component.Sign{X: s.Box.X, Y: s.Box.Y, W: s.Box.W, H: s.Box.H, Message: s.Message}
		if err := ecs.Add(w, e, component.SignComponent, sign); err != nil {
			return created, fmt.Errorf("level %s: sign %d: %w", lvl.Name, i, err)
		}
		created = append(created, e)
	}
	return created, nil
}
