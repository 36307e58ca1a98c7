package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// RespawnSystem kills players that fall below KillY and hands dead players
// to Respawn, which is expected to replace the entity.
type RespawnSystem struct {
	KillY   float64
	Respawn func(w *ecs.World, dead ecs.Entity)
}

func NewRespawnSystem(killY float64, respawn func(w *ecs.World, dead ecs.Entity)) *RespawnSystem {
	return &RespawnSystem{KillY: killY, Respawn: respawn}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, player *component.Player) {
		if player.Life == nil {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent); ok && t.Y < s.KillY {
			player.Life.Kill()
		}
		if !player.Life.Alive() && s.Respawn != nil {
			s.Respawn(w, e)
		}
	})
}
