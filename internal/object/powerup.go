package object

import "math"

// PowerUpType is the stat a pickup boosts.
type PowerUpType int

const (
	PowerUpAttack  PowerUpType = iota // Sword: +7% outgoing damage per stack
	PowerUpDefense                    // Shield: −7% incoming damage per stack
)

// String returns the pickup name.
func (t PowerUpType) String() string {
	if t == PowerUpDefense {
		return "defense"
	}
	return "attack"
}

// Power-up tuning.
const (
	PowerUpFallSpeed    = 1.2
	PowerUpPickupRadius = 30
	PowerUpSize         = 20
)

// PowerUp is a falling pickup dropped by a destroyed enemy.
type PowerUp struct {
	X, Y      float64
	VY        float64
	Type      PowerUpType
	Collected bool
}

// NewPowerUp creates a pickup at the given point.
func NewPowerUp(x, y float64, typ PowerUpType) *PowerUp {
	return &PowerUp{X: x, Y: y, VY: PowerUpFallSpeed, Type: typ}
}

// Step moves the pickup down one tick. Returns true once it is gone.
func (p *PowerUp) Step(arena Arena) bool {
	p.Y += p.VY
	return p.Collected || p.Y > arena.Height+PowerUpSize
}

// Touches reports whether (x, y) is within pickup range on both axes.
func (p *PowerUp) Touches(x, y float64) bool {
	return math.Abs(p.X-x) < PowerUpPickupRadius && math.Abs(p.Y-y) < PowerUpPickupRadius
}
