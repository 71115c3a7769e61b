// Package state holds the shared progress flags. The flag set is an explicit
// object handed by reference to whichever subsystem needs it — there is no
// package-level global.
package state

// Canonical flag names. Puzzle collaborators each write exactly one of
// these; the mode controller and arena gate only ever read.
const (
	FlagPowerRestored = "power_restored"
	FlagSecretKnown   = "secret_known"
	FlagRepairDone    = "repair_done"
)

// Flags maps named booleans plus the derived boss_unlocked gate. The gate is
// recomputed only by Reevaluate, so a caller controls exactly when new flag
// writes become visible to the arena door.
type Flags struct {
	values       map[string]bool
	prereqs      []string
	bossUnlocked bool
}

// NewFlags creates a flag set whose boss_unlocked gate requires every one of
// prereqs to be true.
func NewFlags(prereqs ...string) *Flags {
	if len(prereqs) == 0 {
		prereqs = []string{FlagPowerRestored, FlagSecretKnown, FlagRepairDone}
	}
	return &Flags{
		values:  make(map[string]bool, len(prereqs)),
		prereqs: append([]string(nil), prereqs...),
	}
}

// Set marks a named flag true. Flags only ever latch on; puzzles cannot be
// un-solved.
func (f *Flags) Set(name string) {
	if f == nil || name == "" {
		return
	}
	f.values[name] = true
}

// Get returns the value of a named flag.
func (f *Flags) Get(name string) bool {
	if f == nil {
		return false
	}
	return f.values[name]
}

// Reevaluate recomputes boss_unlocked: true iff every prerequisite flag is
// true.
func (f *Flags) Reevaluate() {
	if f == nil {
		return
	}
	for _, name := range f.prereqs {
		if !f.values[name] {
			f.bossUnlocked = false
			return
		}
	}
	f.bossUnlocked = true
}

// BossUnlocked returns the derived gate as of the last Reevaluate.
func (f *Flags) BossUnlocked() bool {
	return f != nil && f.bossUnlocked
}
