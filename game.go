package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/system"
)

// Options are the command line settings for a run.
type Options struct {
	Debug          bool
	StartLevel     int
	BackgroundPath string
}

type Game struct {
	session  *system.Session
	renderer *render.Renderer
	pauseUI  *ebitenui.UI
	reloader *reloader

	screenW int
	screenH int

	paused        bool
	quitRequested bool
}

func NewGame(opts Options) (*Game, error) {
	bg, err := assets.LoadBackground(opts.BackgroundPath)
	if err != nil {
		return nil, err
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	cfg, physics := system.ConfigFromSpecs(playerSpec, worldSpec)

	session, err := system.NewSession(levels.All(), cfg, physics, prefabs.LoadScript)
	if err != nil {
		return nil, err
	}
	if err := session.SetLevel(opts.StartLevel); err != nil {
		return nil, err
	}

	g := &Game{
		session:  session,
		renderer: render.NewRenderer(bg, render.PaletteFromSpecs(playerSpec, worldSpec)),
		screenW:  int(worldSpec.ScreenWidth),
		screenH:  int(worldSpec.ScreenHeight),
	}
	g.renderer.Debug = opts.Debug
	g.pauseUI = NewPauseUI(g)

	if opts.Debug {
		r, err := newReloader(prefabs.DiskDir())
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.reloader = r
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.reloader != nil {
		g.reloader.apply(g)
	}

	in := pollInput()
	if g.quitRequested {
		in.Quit = true
	}

	if !in.Quit && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused && !in.Quit {
		g.pauseUI.Update()
		return nil
	}

	if err := g.session.Update(in); err != nil {
		if errors.Is(err, system.ErrQuit) {
			g.Close()
			return ebiten.Termination
		}
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	log.Printf("game: paused=%t", paused)
}

// Close releases the hot reload watcher, if any.
func (g *Game) Close() {
	if g.reloader != nil {
		g.reloader.close()
		g.reloader = nil
	}
}
