package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay and hot reload prefabs from ./prefabs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	startLevel := flag.Int("level", 0, "index of the level to start on")
	background := flag.String("bg", "", "background image on disk (defaults to the embedded one)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Debug:          *debug,
		StartLevel:     *startLevel,
		BackgroundPath: *background,
	})
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.screenW, game.screenH)
	ebiten.SetWindowTitle("Side-scrolling Platformer")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
