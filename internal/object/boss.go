package object

import "math"

// Boss tuning.
const (
	BossWidth           = 80
	BossHeight          = 100
	BossBaseHealth      = 400
	BossHealthGrowth    = 1.2
	BossPatrolY         = 50
	BossEdgeMargin      = 10
	BossShotCooldown    = 1000 // ms
	BossMissileCooldown = 4000 // ms
	BossPhaseTicks      = 300
	BossShotDamage      = 20
	bossMissileSpeed    = 4
	bossMissileSpread   = 50
)

// Boss is the singleton level boss.
type Boss struct {
	Body
	Health          int
	MaxHealth       int
	EntrySpeed      float64
	MoveDir         float64
	MoveSpeed       float64
	Phase           int // 0..2, selects the bullet fan
	PhaseTimer      int // Ticks in the current phase
	LastShot        float64
	ShotCooldown    float64
	LastMissile     float64
	MissileCooldown float64
	StunnedUntil    float64 // ms; zero when never stunned
	LastBeamHit     float64 // ms; beam damage gate
	BeamHitOnce     bool

	dead bool
}

// BossHealthForLevel returns round(400 × 1.2^(level−1)).
func BossHealthForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Round(BossBaseHealth * math.Pow(BossHealthGrowth, float64(level-1))))
}

// NewBoss creates a boss above the arena, horizontally centered.
func NewBoss(arena Arena, level int) *Boss {
	hp := BossHealthForLevel(level)
	return &Boss{
		Body:            Body{X: arena.CenterX(), Y: -100, W: BossWidth, H: BossHeight},
		Health:          hp,
		MaxHealth:       hp,
		EntrySpeed:      1,
		MoveDir:         1,
		MoveSpeed:       1,
		ShotCooldown:    BossShotCooldown,
		MissileCooldown: BossMissileCooldown,
	}
}

// Stunned reports whether the boss is frozen at time now.
func (b *Boss) Stunned(now float64) bool {
	return b.StunnedUntil > 0 && now < b.StunnedUntil
}

// Step moves the boss and fires its weapons. targetX/targetY is the player.
func (b *Boss) Step(now float64, arena Arena, targetX, targetY float64) (bullets, missiles []*Projectile) {
	if b.Stunned(now) {
		return nil, nil
	}

	if b.Y < BossPatrolY {
		b.Y += b.EntrySpeed
	} else {
		b.X += b.MoveDir * b.MoveSpeed
		minX := b.W/2 + BossEdgeMargin
		maxX := arena.Width - b.W/2 - BossEdgeMargin
		if b.X < minX {
			b.X = minX
			b.MoveDir = 1
		} else if b.X > maxX {
			b.X = maxX
			b.MoveDir = -1
		}
	}

	if now-b.LastShot > b.ShotCooldown {
		bullets = b.fan()
		b.LastShot = now
	}
	if now-b.LastMissile > b.MissileCooldown {
		missiles = b.volley(targetX, targetY)
		b.LastMissile = now
	}

	b.PhaseTimer++
	if b.PhaseTimer > BossPhaseTicks {
		b.Phase = (b.Phase + 1) % 3
		b.PhaseTimer = 0
	}
	return bullets, missiles
}

// fan fires 3/5/7 bullets spread over 30°/45°/60° depending on the phase.
func (b *Boss) fan() []*Projectile {
	count, spread := 3, 30.0
	switch b.Phase {
	case 1:
		count, spread = 5, 45
	case 2:
		count, spread = 7, 60
	}

	shots := make([]*Projectile, 0, count)
	for i := 0; i < count; i++ {
		angle := (float64(i) - float64(count-1)/2) * (spread / float64(count)) * math.Pi / 180
		shots = append(shots, NewBossShot(b.X, b.Y+b.H/2, 6, 10, math.Sin(angle)*3, 5, BossShotDamage))
	}
	return shots
}

// volley fires three missiles aimed around the target.
func (b *Boss) volley(targetX, targetY float64) []*Projectile {
	shots := make([]*Projectile, 0, 3)
	for i := 0; i < 3; i++ {
		tx := targetX + float64(i-1)*bossMissileSpread
		dx := tx - b.X
		dy := targetY - b.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}
		shots = append(shots, NewBossShot(b.X, b.Y+b.H/2, 8, 15,
			dx/dist*bossMissileSpeed, dy/dist*bossMissileSpeed, BossShotDamage))
	}
	return shots
}

// TakeDamage subtracts health, clamped at zero. Returns true if the boss died.
func (b *Boss) TakeDamage(amount int) bool {
	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		return true
	}
	return false
}

// HealthFraction returns health as a 0..1 value for UI bars.
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// LowHealth reports whether the boss is under 30% health.
func (b *Boss) LowHealth() bool {
	return float64(b.Health) < float64(b.MaxHealth)*0.3
}

// Kill marks the boss as removed so stale references stop targeting it.
func (b *Boss) Kill() {
	b.dead = true
}

// Alive reports whether the boss is still in play.
func (b *Boss) Alive() bool {
	return !b.dead && b.Health > 0
}
