package object

import (
	"math"

	"github.com/tomz197/starfall/internal/physics"
)

// Homing missile tuning.
const (
	MissileSpeed    = 7
	MissileTurnRate = 0.12 // rad/tick
	MissileLife     = 180  // ticks
	MissileDamage   = 40
	MissileWidth    = 6
	MissileHeight   = 14
)

// Missile is a player homing missile. It turns toward its target at a capped
// rate and falls back to the nearest live target when its own one dies.
type Missile struct {
	Body
	Angle    float64 // Heading in radians; -π/2 is straight up
	Speed    float64
	TurnRate float64
	Life     int
	Damage   float64
	Target   Target

	destroyed bool
}

// NewMissile creates a missile leaving (x, y) straight up toward target.
func NewMissile(x, y float64, target Target) *Missile {
	return &Missile{
		Body:     Body{X: x, Y: y, W: MissileWidth, H: MissileHeight},
		Angle:    -math.Pi / 2,
		Speed:    MissileSpeed,
		TurnRate: MissileTurnRate,
		Life:     MissileLife,
		Damage:   MissileDamage,
		Target:   target,
	}
}

// Step steers and moves the missile. nearest returns the closest live target
// to a point, or nil. Returns true when the missile should be removed.
func (m *Missile) Step(arena Arena, nearest func(x, y float64) Target) bool {
	if m.destroyed {
		return true
	}

	if m.Target == nil || !m.Target.Alive() {
		m.Target = nil
		if nearest != nil {
			m.Target = nearest(m.X, m.Y)
		}
		if m.Target == nil {
			return true
		}
	}

	tx, ty := m.Target.Center()
	m.Angle = physics.TurnToward(m.Angle, math.Atan2(ty-m.Y, tx-m.X), m.TurnRate)
	m.X += math.Cos(m.Angle) * m.Speed
	m.Y += math.Sin(m.Angle) * m.Speed

	m.Life--
	if m.Life <= 0 {
		return true
	}
	return m.Y < -m.H || m.Y > arena.Height+m.H || m.X < -m.W || m.X > arena.Width+m.W
}

// MarkDestroyed marks the missile as spent.
func (m *Missile) MarkDestroyed() {
	m.destroyed = true
}

// IsDestroyed returns true if the missile has hit something.
func (m *Missile) IsDestroyed() bool {
	return m.destroyed
}
