package components

import (
	"github.com/jakecoffman/cp"

	"github.com/hvail/terminal-echo/common"
)

// PlayerController stores the player's movement tuning and footprint.
type PlayerController struct {
	Accel    float64
	Friction float64
	MaxSpeed float64
	Width    float64
	Height   float64
}

// Bounds returns the player's footprint rectangle at pos.
func (p *PlayerController) Bounds(pos cp.Vector) common.Rect {
	if p == nil {
		return common.Rect{}
	}
	return common.Rect{X: pos.X, Y: pos.Y, Width: p.Width, Height: p.Height}
}

// Center returns the center of the player's footprint at pos.
func (p *PlayerController) Center(pos cp.Vector) cp.Vector {
	if p == nil {
		return pos
	}
	return cp.Vector{X: pos.X + p.Width/2, Y: pos.Y + p.Height/2}
}
