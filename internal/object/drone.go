package object

import (
	"math"

	"github.com/tomz197/starfall/internal/physics"
)

// Support drone tuning.
const (
	SupportDroneCount     = 2
	SupportDroneFlank     = 60
	SupportDroneLift      = 20 // Hover this far above the player
	SupportDroneLerp      = 0.1
	SupportDroneFireTicks = 24
	SupportDroneShotSpeed = 9
	SupportDroneDamage    = 10
	SupportDroneSize      = 18
)

// Drone is a friendly support drone deployed by the drone-squad ability.
type Drone struct {
	X, Y             float64
	TargetX, TargetY float64
	Side             float64 // -1 left flank, +1 right flank
	Life             int     // Ticks remaining
	ShotTimer        int     // Ticks until the next shot
}

// NewSupportDrone creates a support drone on the given flank of (px, py).
func NewSupportDrone(px, py, side float64, life int) *Drone {
	x := px + side*SupportDroneFlank
	y := py - SupportDroneLift
	return &Drone{
		X: x, Y: y,
		TargetX: x, TargetY: y,
		Side:      side,
		Life:      life,
		ShotTimer: SupportDroneFireTicks,
	}
}

// Step eases the drone toward its flank slot and fires at aim when its timer
// runs out. aim is the nearest live target or nil. Returns the shot, if any,
// and whether the drone has expired.
func (d *Drone) Step(px, py float64, aim Target) (shot *Projectile, expired bool) {
	d.TargetX = px + d.Side*SupportDroneFlank
	d.TargetY = py - SupportDroneLift
	d.X = physics.Lerp(d.X, d.TargetX, SupportDroneLerp)
	d.Y = physics.Lerp(d.Y, d.TargetY, SupportDroneLerp)

	d.ShotTimer--
	if d.ShotTimer <= 0 {
		d.ShotTimer = SupportDroneFireTicks
		if aim != nil && aim.Alive() {
			tx, ty := aim.Center()
			dx, dy := tx-d.X, ty-d.Y
			dist := math.Hypot(dx, dy)
			if dist > 0 {
				shot = NewAimedBullet(d.X, d.Y,
					dx/dist*SupportDroneShotSpeed, dy/dist*SupportDroneShotSpeed,
					SupportDroneDamage, SpecialDrone, -1)
			}
		}
	}

	d.Life--
	return shot, d.Life <= 0
}
