package object

// Special tags a player projectile fired by something other than the main gun.
type Special int

const (
	SpecialNone  Special = iota
	SpecialCone          // Cone-burst ability shot
	SpecialDrone         // Support drone shot
)

// Projectile is any bullet or unguided missile in flight.
// The owning collection decides who it can hit.
type Projectile struct {
	Body
	VX, VY    float64 // Per-tick velocity
	Damage    float64
	Special   Special
	Life      int // Ticks remaining; negative means unlimited
	destroyed bool
}

// Player main-gun bullet.
const (
	PlayerBulletWidth  = 4
	PlayerBulletHeight = 12
	PlayerBulletSpeed  = 8
	PlayerBulletDamage = 10
)

// Enemy bullets.
const (
	EnemyBulletSpeed = 4.0
	DroneBulletSpeed = 2.2
)

// NewPlayerBullet creates a main-gun shot travelling straight up.
func NewPlayerBullet(x, y float64) *Projectile {
	return &Projectile{
		Body:   Body{X: x, Y: y, W: PlayerBulletWidth, H: PlayerBulletHeight},
		VY:     -PlayerBulletSpeed,
		Damage: PlayerBulletDamage,
		Life:   -1,
	}
}

// NewAimedBullet creates a player-side shot with an explicit velocity.
func NewAimedBullet(x, y, vx, vy, damage float64, special Special, life int) *Projectile {
	return &Projectile{
		Body:    Body{X: x, Y: y, W: 6, H: 12},
		VX:      vx,
		VY:      vy,
		Damage:  damage,
		Special: special,
		Life:    life,
	}
}

// NewEnemyBullet creates a hostile shot falling straight down.
func NewEnemyBullet(x, y, w, h, speed, damage float64) *Projectile {
	return &Projectile{
		Body:   Body{X: x, Y: y, W: w, H: h},
		VY:     speed,
		Damage: damage,
		Life:   -1,
	}
}

// NewBossShot creates a boss bullet or boss missile with a fixed heading.
func NewBossShot(x, y, w, h, vx, vy, damage float64) *Projectile {
	return &Projectile{
		Body:   Body{X: x, Y: y, W: w, H: h},
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Life:   -1,
	}
}

// Step advances the projectile one tick. vyScale slows vertical motion only
// (1 = normal speed). Returns true when the projectile should be removed.
func (p *Projectile) Step(arena Arena, vyScale float64) bool {
	if p.destroyed {
		return true
	}
	p.X += p.VX
	p.Y += p.VY * vyScale

	if p.Life >= 0 {
		p.Life--
		if p.Life <= 0 {
			return true
		}
	}
	return p.OffArena(arena)
}

// OffArena reports whether the projectile left the arena by more than its own size.
func (p *Projectile) OffArena(arena Arena) bool {
	return p.Y < -p.H || p.Y > arena.Height+p.H ||
		p.X < -p.W || p.X > arena.Width+p.W
}

// MarkDestroyed marks the projectile as consumed.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile has been consumed.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
