package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	playerFile := flag.String("player", "player.yaml", "mover prefab in prefabs/")
	levelFile := flag.String("level", "level.yaml", "level prefab in prefabs/")
	verbose := flag.Bool("v", false, "log every mover event")
	watch := flag.Bool("watch", true, "reload prefabs when files under prefabs/ change")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		PlayerFile: *playerFile,
		LevelFile:  *levelFile,
		Verbose:    *verbose,
		Watch:      *watch,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
