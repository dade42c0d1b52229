package render

import (
	"image/color"

	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// Palette holds the fill colors for each kind of thing on screen.
type Palette struct {
	Background color.Color
	Platform   color.Color
	Enemy      color.Color
	Player     color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Blue,
		Platform:   colornames.Lime,
		Enemy:      colornames.Orange,
		Player:     colornames.Red,
	}
}

// PaletteFromSpecs picks colors from the prefabs, keeping defaults for any
// left unset.
func PaletteFromSpecs(player *prefabs.PlayerSpec, world *prefabs.WorldSpec) Palette {
	def := DefaultPalette()
	return Palette{
		Background: world.Background.Or(def.Background),
		Platform:   world.PlatformColor.Or(def.Platform),
		Enemy:      world.EnemyColor.Or(def.Enemy),
		Player:     player.Color.Or(def.Player),
	}
}
