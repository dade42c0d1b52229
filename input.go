package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/obj"
)

// pollInput reads the keyboard and window state for this frame.
func pollInput() obj.Input {
	return obj.Input{
		LeftHeld:      ebiten.IsKeyPressed(ebiten.KeyLeft),
		RightHeld:     ebiten.IsKeyPressed(ebiten.KeyRight),
		LeftPressed:   inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		RightPressed:  inpututil.IsKeyJustPressed(ebiten.KeyRight),
		LeftReleased:  inpututil.IsKeyJustReleased(ebiten.KeyLeft),
		RightReleased: inpututil.IsKeyJustReleased(ebiten.KeyRight),
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeyUp),
		Quit:          ebiten.IsWindowBeingClosed(),
	}
}
