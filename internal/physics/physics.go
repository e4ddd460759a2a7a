// Package physics provides hit-testing and distance utilities for the arena.
package physics

import "math"

// Rect is an axis-aligned rectangle described by its edges.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// CenteredRect builds a rectangle around a center point.
// padX widens the box horizontally on both sides (wing padding).
func CenteredRect(cx, cy, w, h, padX float64) Rect {
	return Rect{
		Left:   cx - w/2 - padX,
		Right:  cx + w/2 + padX,
		Top:    cy - h/2,
		Bottom: cy + h/2,
	}
}

// Overlaps reports whether two rectangles intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right &&
		r.Right > o.Left &&
		r.Top < o.Bottom &&
		r.Bottom > o.Top
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NormalizeAngle wraps an angle to [-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TurnToward rotates current toward target by at most maxStep radians.
func TurnToward(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return NormalizeAngle(current + diff)
}
