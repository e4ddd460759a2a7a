package object

import (
	"math"
	"math/rand"
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota // Falls straight down, fires on its own cooldown
	EnemyDrone                  // Spirals down in swarms, fires slow shots
	EnemyBonus                  // Bonus-round fodder, never fires
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyDrone:
		return "drone"
	case EnemyBonus:
		return "bonus"
	default:
		return "basic"
	}
}

// Enemy sizes and motion.
const (
	EnemyWidth       = 35
	EnemyHeight      = 45
	DroneSize        = 28
	EnemyPadX        = 8    // Wing padding for hit tests
	EnemyCullMargin  = 50   // Removed once this far below the arena
	dronePhaseStep   = 0.04 // Phase advance per tick
	droneSwayX       = 3.0
	droneSwayY       = 1.2
	droneShootChance = 0.01
)

// Enemy is a hostile ship. Kind selects movement and shooting behaviour.
type Enemy struct {
	Body
	Kind         EnemyKind
	Speed        float64
	Health       float64
	LastShot     float64 // ms
	ShotCooldown float64 // ms
	Color        string

	// Drone oscillation
	Phase       float64
	PhaseOffset float64

	dead bool
}

// NewEnemy creates a basic enemy at x just above the arena.
func NewEnemy(x, speed, shotCooldown float64, color string) *Enemy {
	return &Enemy{
		Body:         Body{X: x, Y: -40, W: EnemyWidth, H: EnemyHeight},
		Kind:         EnemyBasic,
		Speed:        speed,
		Health:       1,
		ShotCooldown: shotCooldown,
		Color:        color,
	}
}

// NewDrone creates one member of a drone swarm.
func NewDrone(x, y, speed, shotCooldown, phaseOffset float64) *Enemy {
	return &Enemy{
		Body:         Body{X: x, Y: y, W: DroneSize, H: DroneSize},
		Kind:         EnemyDrone,
		Speed:        speed,
		Health:       1,
		ShotCooldown: shotCooldown,
		Color:        "#ffffff",
		PhaseOffset:  phaseOffset,
	}
}

// NewBonusEnemy creates a non-shooting bonus-round enemy.
func NewBonusEnemy(x, speed float64, color string) *Enemy {
	return &Enemy{
		Body:         Body{X: x, Y: -40, W: EnemyWidth, H: EnemyHeight},
		Kind:         EnemyBonus,
		Speed:        speed,
		Health:       1,
		ShotCooldown: Never,
		Color:        color,
	}
}

// Step moves the enemy one tick and returns a shot if it fired.
// Returns remove=true once the enemy has fallen off the bottom.
func (e *Enemy) Step(now float64, level int, arena Arena, rng *rand.Rand) (shot *Projectile, remove bool) {
	switch e.Kind {
	case EnemyDrone:
		e.Phase += dronePhaseStep
		e.X += math.Sin(e.Phase+e.PhaseOffset) * droneSwayX
		e.Y += e.Speed + math.Cos(e.Phase+e.PhaseOffset)*droneSwayY
		if rng.Float64() < droneShootChance && now-e.LastShot > e.ShotCooldown {
			shot = NewEnemyBullet(e.X, e.Y+e.H/2, 4, 10, DroneBulletSpeed, EnemyShotDamage(level))
			e.LastShot = now
		}
	default:
		e.Y += e.Speed
		if now-e.LastShot > e.ShotCooldown {
			shot = NewEnemyBullet(e.X, e.Y+e.H/2, 3, 8, EnemyBulletSpeed, EnemyShotDamage(level))
			e.LastShot = now
		}
	}
	return shot, e.Y > arena.Height+EnemyCullMargin
}

// EnemyShotDamage scales enemy bullet damage with the level.
func EnemyShotDamage(level int) float64 {
	return float64(10 + 5*(level-1))
}

// Kill marks the enemy as removed so stale references stop targeting it.
func (e *Enemy) Kill() {
	e.dead = true
}

// Alive reports whether the enemy is still in play.
func (e *Enemy) Alive() bool {
	return !e.dead && e.Health > 0
}
