package arena

// Phase is the arena encounter state. Transitions are one-directional:
// Intro → Fight → Win, or Fight → GameOver → (external reset) → Intro.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseFight
	PhaseWin
	PhaseGameOver
)

// String returns the phase name for logs and the HUD.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseFight:
		return "fight"
	case PhaseWin:
		return "win"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Terminal reports whether p freezes the simulation.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseGameOver
}

// Event is something that can move the encounter between phases.
type Event int

const (
	// EventCountdownDone fires when the intro countdown reaches zero.
	EventCountdownDone Event = iota
	// EventAllUnitsDown fires when the last swarm unit has been removed.
	EventAllUnitsDown
	// EventPlayerDown fires when the player's health reaches zero.
	EventPlayerDown
)

// Transition returns the phase after applying ev and whether the move is
// legal. Illegal moves leave the phase unchanged, which is what makes a
// repeated terminal check a no-op.
func (p Phase) Transition(ev Event) (Phase, bool) {
	switch {
	case p == PhaseIntro && ev == EventCountdownDone:
		return PhaseFight, true
	case p == PhaseFight && ev == EventAllUnitsDown:
		return PhaseWin, true
	case p == PhaseFight && ev == EventPlayerDown:
		return PhaseGameOver, true
	}
	return p, false
}
