package object

import "github.com/tomz197/starfall/internal/physics"

// Player defaults.
const (
	PlayerWidth        = 40
	PlayerHeight       = 60
	PlayerSpeed        = 5
	PlayerMaxHealth    = 100
	PlayerShotCooldown = 200 // ms
	PlayerBottomOffset = 80  // Spawn distance from the bottom edge
	PlayerPadX         = 10  // Wing padding for hit tests
)

// Player is the ship under input control.
type Player struct {
	Body
	Ship         string // Ship id; selects the draw style and ability set
	Speed        float64
	Health       int
	MaxHealth    int
	Shooting     bool
	LastShot     float64 // ms
	ShotCooldown float64 // ms
}

// NewPlayer creates a ship at the bottom center of the arena.
func NewPlayer(arena Arena, ship string, w, h, speed float64) *Player {
	p := &Player{
		Body:         Body{W: w, H: h},
		Ship:         ship,
		Speed:        speed,
		Health:       PlayerMaxHealth,
		MaxHealth:    PlayerMaxHealth,
		ShotCooldown: PlayerShotCooldown,
	}
	p.ResetPosition(arena)
	return p
}

// ResetPosition puts the ship back at its spawn point.
func (p *Player) ResetPosition(arena Arena) {
	p.X = arena.CenterX()
	p.Y = arena.Height - PlayerBottomOffset
}

// Move shifts the ship by a normalized direction and keeps it inside the arena.
func (p *Player) Move(dx, dy float64, arena Arena) {
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
	p.Clamp(arena)
}

// MoveTo places the ship at an absolute position (pointer control).
func (p *Player) MoveTo(x, y float64, arena Arena) {
	p.X = x
	p.Y = y
	p.Clamp(arena)
}

// Clamp keeps the whole ship inside the arena.
func (p *Player) Clamp(arena Arena) {
	p.X = physics.Clamp(p.X, p.W/2, arena.Width-p.W/2)
	p.Y = physics.Clamp(p.Y, p.H/2, arena.Height-p.H/2)
}

// TryShoot fires the main gun if the trigger is held and the gun is cool.
func (p *Player) TryShoot(now float64) *Projectile {
	if !p.Shooting || now-p.LastShot <= p.ShotCooldown {
		return nil
	}
	p.LastShot = now
	return NewPlayerBullet(p.X, p.Y-p.H/2)
}

// TakeDamage subtracts health, clamped at zero. Returns true if the ship is dead.
func (p *Player) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Heal restores full health.
func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

// HealthFraction returns health as a 0..1 value for UI bars.
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}
