package components

// InputState mirrors the movement actions routed to an entity for the current
// tick. The mode controller writes it only while the owning subsystem is
// active; a zero value means no held direction.
type InputState struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// MoveY is -1 for up, 0 for none, +1 for down.
	MoveY float64
}
