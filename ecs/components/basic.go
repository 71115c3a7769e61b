package components

import "github.com/jakecoffman/cp"

// Transform stores position in playfield space.
type Transform struct {
	Pos cp.Vector
}

// Velocity stores linear velocity per tick.
type Velocity struct {
	V cp.Vector
}

// Health stores integer hit points and the invulnerability countdown.
type Health struct {
	Current int
	Max     int
	IFrames int
}

// NewHealth creates a Health component at full hit points.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the owner still has hit points.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Vulnerable reports whether damage would currently apply.
func (h *Health) Vulnerable() bool {
	return h != nil && h.IFrames == 0
}

// ApplyDamage subtracts amount, clamping at zero. Damage is refused while the
// invulnerability countdown is running. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || amount <= 0 || h.IFrames > 0 || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return true
}

// StartIFrames arms the invulnerability countdown.
func (h *Health) StartIFrames(ticks int) {
	if h == nil || ticks <= 0 {
		return
	}
	h.IFrames = ticks
}

// Tick advances the countdown by one tick. It never goes below zero and is
// decremented at most once per call.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

// HealFull restores the owner to maximum hit points and clears the countdown.
func (h *Health) HealFull() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.IFrames = 0
}
