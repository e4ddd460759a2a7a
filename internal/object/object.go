// Package object defines the arena entities and their per-tick movement.
//
// Motion is frame-coupled: every Step applies a fixed per-tick delta tuned for
// a 60 Hz tick. Time-based fields (LastShot, StunnedUntil, ...) are simulation
// milliseconds supplied by the caller.
package object

import (
	"math"

	"github.com/tomz197/starfall/internal/physics"
)

// Arena is the playfield in logical pixels. Origin is top-left, y grows down.
type Arena struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal middle of the arena.
func (a Arena) CenterX() float64 { return a.Width / 2 }

// Body is the shared shape of every entity: a center point and a box.
type Body struct {
	X, Y float64 // Center
	W, H float64 // Bounding box
}

// Rect returns the hit box, widened horizontally by padX.
func (b *Body) Rect(padX float64) physics.Rect {
	return physics.CenteredRect(b.X, b.Y, b.W, b.H, padX)
}

// Center returns the body's center point.
func (b *Body) Center() (float64, float64) {
	return b.X, b.Y
}

// Target is anything a homing missile or support drone can aim at.
type Target interface {
	Center() (x, y float64)
	Alive() bool
}

// Never is a cooldown long enough that the timer never fires in practice.
var Never = math.Inf(1)
