package obj

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// Platform is a static solid block. It only moves when the world scrolls.
type Platform struct {
	common.Rect
}

func NewPlatform(b levels.Block) *Platform {
	return &Platform{Rect: common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}}
}
