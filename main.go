package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed for wave generation and spread (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs when files under prefabs/ change")
	intermission := flag.Bool("intermission", true, "place the forge and wave switch between waves when the arena asks for them")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("arena: seed %d", *seed)

	game, err := NewGame(Options{Seed: *seed, Debug: *debug, Watch: *watch, Intermission: *intermission})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle("arena")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
