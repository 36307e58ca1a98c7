package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
)

const (
	pixelsPerUnit = 48
	slowMoScale   = 0.25
)

type Options struct {
	PlayerFile string
	LevelFile  string
	Verbose    bool
	Watch      bool
	Mute       bool
}

type Game struct {
	opts Options

	world     *ecs.World
	scheduler *ecs.Scheduler
	movers    *system.MoverSystem
	physics   *system.PhysicsSystem
	respawn   *system.RespawnSystem
	render    *system.RenderSystem

	spec        prefabs.MoverSpec
	player      ecs.Entity
	levelEntity []ecs.Entity

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	slowMo  bool
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadMoverSpec(opts.PlayerFile)
	if err != nil {
		return nil, err
	}
	level, err := prefabs.LoadLevelSpec(opts.LevelFile)
	if err != nil {
		return nil, err
	}

	dt := 1.0 / common.TPS
	g := &Game{
		opts:    opts,
		world:   ecs.NewWorld(),
		movers:  system.NewMoverSystem(dt),
		physics: system.NewPhysicsSystem(spec.Physics.Gravity, dt),
		render:  system.NewRenderSystem(pixelsPerUnit),
		spec:    spec,
	}
	g.respawn = system.NewRespawnSystem(level.KillY, g.respawnPlayer)

	var audio ecs.System
	if !opts.Mute {
		audio = system.NewAudioSystem()
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewControlSystem(),
		g.movers,
		g.physics,
		system.NewContactSystem(),
		system.NewInteractSystem(),
		g.respawn,
		system.NewEventLogSystem(opts.Verbose),
		audio,
	)

	if err := g.loadLevel(level); err != nil {
		return nil, err
	}
	g.player, err = entity.NewPlayerAt(g.world, spec, level.SpawnX, level.SpawnY)
	if err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.slowMo = !g.slowMo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.render.ShowHUD = !g.render.ShowHUD
	}
	g.pollWatcher()

	scale := 1.0
	switch {
	case g.paused:
		scale = 0
	case g.slowMo:
		scale = slowMoScale
	}
	g.movers.TimeScale = scale
	g.physics.TimeScale = scale

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(c prefabs.Change) {
	log.Printf("prefabs: %s changed", c.Name())
	switch {
	case c.Kind == prefabs.ScriptChanged, c.Matches(g.opts.PlayerFile):
		if err := g.ReloadTuning(); err != nil {
			log.Printf("prefabs: reload %s: %v", g.opts.PlayerFile, err)
		}
	case c.Matches(g.opts.LevelFile):
		if err := g.ReloadLevel(); err != nil {
			log.Printf("prefabs: reload %s: %v", g.opts.LevelFile, err)
		}
	}
}

// ReloadTuning rebuilds the player from the mover prefab in place. A broken
// file leaves the current player untouched.
func (g *Game) ReloadTuning() error {
	spec, err := prefabs.LoadMoverSpec(g.opts.PlayerFile)
	if err != nil {
		return err
	}
	if _, err := spec.Config(); err != nil {
		return err
	}
	player, err := entity.ReplacePlayer(g.world, g.player, spec, true)
	if err != nil {
		return err
	}
	g.spec = spec
	g.player = player
	g.physics.SetGravity(spec.Physics.Gravity)
	log.Printf("prefabs: player %q reloaded", spec.Name)
	return nil
}

// ReloadLevel swaps the level geometry and respawns the player at the new
// spawn point.
func (g *Game) ReloadLevel() error {
	level, err := prefabs.LoadLevelSpec(g.opts.LevelFile)
	if err != nil {
		return err
	}
	for _, e := range g.levelEntity {
		g.world.DestroyEntity(e)
	}
	if err := g.loadLevel(level); err != nil {
		return err
	}
	g.respawn.KillY = level.KillY

	g.world.DestroyEntity(g.player)
	g.player, err = entity.NewPlayerAt(g.world, g.spec, level.SpawnX, level.SpawnY)
	return err
}

func (g *Game) loadLevel(level prefabs.LevelSpec) error {
	created, err := entity.LoadLevelToWorld(g.world, level)
	g.levelEntity = created
	if err != nil {
		return fmt.Errorf("level %s: %w", g.opts.LevelFile, err)
	}
	return nil
}

func (g *Game) respawnPlayer(w *ecs.World, dead ecs.Entity) {
	player, err := entity.ReplacePlayer(w, dead, g.spec, false)
	if err != nil {
		log.Printf("player: respawn: %v", err)
		return
	}
	g.player = player
}
