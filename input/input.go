// Package input turns device state into the named actions the simulation
// consumes. Nothing past this package knows about keys or buttons.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State is one tick's worth of named actions plus the pointer position.
type State struct {
	// MoveX/MoveY are the held movement directions, -1/0/+1 per axis.
	// Diagonals hold both.
	MoveX float64
	MoveY float64
	// Interact is true on the tick the interact key was pressed.
	Interact bool
	// Fire is true on the tick the fire button was pressed; the target point
	// is the pointer position.
	Fire bool
	// Cancel is true on the tick the cancel key was pressed.
	Cancel bool
	// Enter and Backspace are edge-triggered, for text-entry puzzles.
	Enter     bool
	Backspace bool
	// Typed holds the printable characters entered this tick.
	Typed []rune
	// CursorX/CursorY are the pointer position in playfield coordinates.
	CursorX float64
	CursorY float64
	// Any is true if any key or mouse button was pressed this tick.
	Any bool
}

// Keyboard polls ebiten's keyboard and mouse into a State once per tick.
type Keyboard struct {
	state State
	keys  []ebiten.Key
	runes []rune
}

// NewKeyboard creates a keyboard/mouse poller.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Update polls the devices. Call exactly once per tick, before the mode
// controller runs.
func (k *Keyboard) Update() {
	if k == nil {
		return
	}
	st := &k.state

	st.MoveX = 0
	st.MoveY = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		st.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		st.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		st.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		st.MoveY += 1
	}

	st.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	st.Cancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	st.Fire = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	st.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	st.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace)

	k.runes = ebiten.AppendInputChars(k.runes[:0])
	st.Typed = k.runes

	mx, my := ebiten.CursorPosition()
	st.CursorX = float64(mx)
	st.CursorY = float64(my)

	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	st.Any = len(k.keys) > 0 || st.Fire ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// State returns the current tick's actions.
func (k *Keyboard) State() *State {
	if k == nil {
		return nil
	}
	return &k.state
}
