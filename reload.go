package main

import (
	"log"
	"strings"

	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/system"
)

// reloader applies prefab edits on the game goroutine. The watcher runs in
// the background; changes are only drained from Update.
type reloader struct {
	watcher *prefabs.Watcher
}

func newReloader(dir string) (*reloader, error) {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	log.Printf("prefabs: watching %s", dir)
	return &reloader{watcher: w}, nil
}

func (r *reloader) apply(g *Game) {
	for {
		select {
		case name, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.reload(g, name)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (r *reloader) reload(g *Game, name string) {
	if after, ok := strings.CutPrefix(name, "scripts/"); ok {
		script := strings.TrimSuffix(after, ".tengo")
		src, err := prefabs.LoadScript(script)
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		if err := g.session.ReloadScript(script, src); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		log.Printf("prefabs: reloaded %s", name)
		return
	}

	if name != prefabs.PlayerSpecFile && name != prefabs.WorldSpecFile {
		return
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	cfg, physics := system.ConfigFromSpecs(playerSpec, worldSpec)
	if err := g.session.Retune(cfg, physics); err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	g.renderer.Palette = render.PaletteFromSpecs(playerSpec, worldSpec)
	log.Printf("prefabs: reloaded %s", name)
}

func (r *reloader) close() {
	if err := r.watcher.Close(); err != nil {
		log.Printf("prefabs: close watcher: %v", err)
	}
}
