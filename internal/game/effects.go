package game

import (
	"math"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/physics"
)

// Effect sizes.
const (
	beamKillSize     = 30
	beamBossHitSize  = 20
	wipeKillSize     = 30
	novaClearSize    = 60
	droneLifeTicks   = 600
	coneMuzzleOffset = 0.5 // Fraction of ship height above center
)

// activateAbilities handles slot presses. Rejected presses are silent.
func (g *Game) activateAbilities(in input.Intent) {
	w := g.w
	for i, pressed := range in.Slots {
		a := w.Abilities[i]
		if !pressed || a == nil {
			continue
		}
		if !a.TryActivate(w.Now) {
			continue
		}
		if g.onActivate(a) {
			if a.Instant {
				a.Finish()
			}
			g.emit(CueAbility)
			g.log.Debug("ability", "kind", a.Kind, "now", w.Now)
		}
	}
}

// onActivate runs the immediate part of an ability. Returns false when the
// activation was refunded.
func (g *Game) onActivate(a *ability.Ability) bool {
	w := g.w
	p := w.Player

	switch a.Kind {
	case ability.ConeBurst:
		w.ConeLastFire = math.Inf(-1)

	case ability.Nova:
		cfg := ability.NovaSettings
		for _, e := range w.Enemies {
			e.Y = math.Max(0, e.Y-cfg.PushBack)
		}
		if w.Boss != nil {
			w.Boss.StunnedUntil = w.Now + cfg.StunMS
		}
		g.clearHostileShots(cfg.ClearRadius)
		w.Explosions = append(w.Explosions, object.NewExplosion(p.X, p.Y, novaClearSize, object.ExplosionBurst))

	case ability.MissileStrike:
		var targets []object.Target
		for _, e := range w.Enemies {
			if e.Alive() {
				targets = append(targets, e)
			}
		}
		if w.Boss != nil && w.Boss.Alive() {
			targets = append(targets, w.Boss)
		}
		if len(targets) == 0 {
			a.Refund()
			return false
		}
		for i, t := range targets {
			w.Launches = append(w.Launches, launch{
				At:     w.Now + float64(i)*ability.MissileSettings.StaggerMS,
				Target: t,
			})
		}

	case ability.Wavefront:
		p.MoveTo(w.Arena.CenterX(), w.Arena.Height-ability.WavefrontSettings.SafeOffset, w.Arena)
		w.WaveY = w.Arena.Height

	case ability.DroneSquad:
		life := int(math.Round(a.Duration / TickMS))
		if life <= 0 {
			life = droneLifeTicks
		}
		for i := 0; i < ability.SquadSettings.Count; i++ {
			side := -1.0
			if i%2 == 1 {
				side = 1
			}
			w.Drones = append(w.Drones, object.NewSupportDrone(p.X, p.Y, side, life))
		}
	}
	return true
}

// updateAbilities runs the continuous part of every active ability, then
// counts its timer down.
func (g *Game) updateAbilities(dt float64) {
	w := g.w
	for _, a := range w.Abilities {
		if a == nil || !a.Active {
			continue
		}

		switch a.Kind {
		case ability.Beam:
			g.beam()
		case ability.ConeBurst:
			g.coneBurst()
		case ability.Wavefront:
			g.wavefront(a)
		}

		if a.Tick(dt) && a.Kind == ability.Overcharge {
			g.overcharge(a)
		}
	}
}

// shieldUp reports whether incoming shots are deflected.
func (g *Game) shieldUp() bool {
	return g.w.abilityActive(ability.Aegis)
}

// beam vaporizes enemies in the column above the ship and burns the boss on
// a fixed interval.
func (g *Game) beam() {
	w := g.w
	cfg := ability.BeamSettings
	x := w.Player.X

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if math.Abs(e.X-x) < cfg.HalfWidth {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			g.killEnemy(e, cfg.KillScore, object.ExplosionLightning, beamKillSize, false)
		}
	}

	b := w.Boss
	if b == nil || !b.Alive() || math.Abs(b.X-x) >= b.W/2+cfg.BossPad {
		return
	}
	if b.BeamHitOnce && w.Now-b.LastBeamHit <= cfg.BossInterval {
		return
	}
	b.BeamHitOnce = true
	b.LastBeamHit = w.Now
	hx := b.X + (g.rng.Float64()-0.5)*b.W
	hy := b.Y + (g.rng.Float64()-0.5)*b.H
	w.Explosions = append(w.Explosions, object.NewExplosion(hx, hy, beamBossHitSize, object.ExplosionLightning))
	g.damageBoss(cfg.BossDamage)
}

// coneBurst fires a spread volley every interval.
func (g *Game) coneBurst() {
	w := g.w
	cfg := ability.ConeSettings
	if w.Now-w.ConeLastFire <= cfg.Interval {
		return
	}
	w.ConeLastFire = w.Now

	p := w.Player
	y := p.Y - p.H*coneMuzzleOffset
	for _, deg := range cfg.Angles {
		rad := deg * math.Pi / 180
		w.PlayerBullets = append(w.PlayerBullets, object.NewAimedBullet(
			p.X, y, math.Sin(rad)*cfg.SpeedX, -math.Cos(rad)*cfg.SpeedY,
			cfg.Damage, object.SpecialCone, cfg.LifeTicks))
	}
}

// wavefront sweeps the front from the bottom edge to the top over the
// ability's duration. Everything the front has passed is destroyed; the boss
// takes one hit per activation.
func (g *Game) wavefront(a *ability.Ability) {
	w := g.w
	w.WaveY = w.Arena.Height * (1 - a.Elapsed())

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.Y >= w.WaveY {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			g.killEnemy(e, g.killScore(), object.ExplosionDisintegrate, wipeKillSize, false)
		}
	}

	if b := w.Boss; b != nil && b.Alive() && !a.Released && b.Y >= w.WaveY {
		a.Released = true
		g.damageBoss(roundHalfUp(float64(b.MaxHealth) * ability.WavefrontSettings.BossFraction))
	}
}

// overcharge releases the stored charge once, when the charge timer ends.
func (g *Game) overcharge(a *ability.Ability) {
	if a.Released {
		return
	}
	a.Released = true
	w := g.w

	// Kills below can cross a boss threshold; a boss spawned by them is spared.
	b := w.Boss
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		g.killEnemy(e, g.killScore(), object.ExplosionDisintegrate, wipeKillSize, false)
	}
	if b != nil && b == w.Boss && b.Alive() {
		frac := ability.OverchargeBossFraction(w.Ledger.Level)
		g.damageBoss(roundHalfUp(float64(b.MaxHealth) * frac))
	}
	g.clearHostileShots(math.Inf(1))
}

// clearHostileShots removes enemy and boss projectiles within radius of the ship.
func (g *Game) clearHostileShots(radius float64) {
	w := g.w
	px, py := w.Player.X, w.Player.Y
	far := func(list []*object.Projectile) []*object.Projectile {
		kept := list[:0]
		for _, p := range list {
			if physics.Distance(p.X, p.Y, px, py) > radius {
				kept = append(kept, p)
			}
		}
		return kept
	}
	w.EnemyBullets = far(w.EnemyBullets)
	w.BossBullets = far(w.BossBullets)
	w.BossMissiles = far(w.BossMissiles)
}
