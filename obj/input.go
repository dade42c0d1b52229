package obj

// Input is one frame of player intent, independent of the device it came from.
type Input struct {
	// LeftHeld and RightHeld are true while the key is down.
	LeftHeld  bool
	RightHeld bool
	// Pressed/Released are true only on the frame the key changed.
	LeftPressed   bool
	RightPressed  bool
	LeftReleased  bool
	RightReleased bool
	JumpPressed   bool
	// Quit is raised when the window is asked to close.
	Quit bool
}

// MoveX is -1 for left, 0 for none or both, +1 for right.
func (i Input) MoveX() float64 {
	var moveX float64
	if i.LeftHeld {
		moveX -= 1
	}
	if i.RightHeld {
		moveX += 1
	}
	return moveX
}
