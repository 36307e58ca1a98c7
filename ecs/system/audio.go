package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
)

// impact speed that plays the landing sound at full volume
const loudLandingSpeed = 12.0

// AudioSystem plays short synthesized cues for jumps and landings.
type AudioSystem struct {
	jump    []byte
	land    []byte
	players []*audio.Player
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{
		jump: assets.Blip(660, 0.09, 30),
		land: assets.Blip(110, 0.15, 20),
	}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	a.prune()
	w.Events().Each(func(evt ecs.Event) {
		switch evt.Kind {
		case ecs.EventJump:
			a.play(a.jump, 0.4)
		case ecs.EventLanded:
			a.play(a.land, common.Clamp(evt.Value/loudLandingSpeed, 0.1, 1))
		}
	})
}

func (a *AudioSystem) play(pcm []byte, volume float64) {
	p := assets.NewPlayer(pcm)
	p.SetVolume(volume)
	p.Play()
	a.players = append(a.players, p)
}

func (a *AudioSystem) prune() {
	kept := a.players[:0]
	for _, p := range a.players {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	a.players = kept
}
