package game

import (
	"math"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/physics"
)

// updatePlayer applies movement intent and the main gun.
func (g *Game) updatePlayer(in input.Intent) {
	w := g.w
	p := w.Player

	if in.HasTarget {
		p.MoveTo(in.TargetX, in.TargetY, w.Arena)
	} else {
		in = in.Normalize()
		p.Move(in.MoveX, in.MoveY, w.Arena)
	}

	p.Shooting = in.Fire
	if b := p.TryShoot(w.Now); b != nil {
		w.PlayerBullets = append(w.PlayerBullets, b)
		g.emit(CueShoot)
	}
}

// updateEnemies moves enemies, collects their shots and drops the ones that
// fell off the bottom.
func (g *Game) updateEnemies() {
	w := g.w
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		shot, remove := e.Step(w.Now, w.Ledger.Level, w.Arena, g.rng)
		if shot != nil {
			w.EnemyBullets = append(w.EnemyBullets, shot)
		}
		if remove {
			e.Kill()
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		}
	}
}

// updateProjectiles moves every bullet family. Hostile shots inside an
// active shield slow down vertically.
func (g *Game) updateProjectiles() {
	w := g.w
	w.PlayerBullets = stepProjectiles(w.PlayerBullets, func(p *object.Projectile) bool {
		return p.Step(w.Arena, 1)
	})

	hostile := func(p *object.Projectile) bool {
		return p.Step(w.Arena, g.shieldSlow(p))
	}
	w.EnemyBullets = stepProjectiles(w.EnemyBullets, hostile)
	w.BossBullets = stepProjectiles(w.BossBullets, hostile)
	w.BossMissiles = stepProjectiles(w.BossMissiles, hostile)
}

// shieldSlow returns the vertical speed factor for a hostile shot.
func (g *Game) shieldSlow(p *object.Projectile) float64 {
	w := g.w
	if !w.abilityActive(ability.Aegis) {
		return 1
	}
	if physics.PointInCircle(p.X, p.Y, w.Player.X, w.Player.Y, ability.AegisSettings.Radius) {
		return ability.AegisSettings.SlowFactor
	}
	return 1
}

// stepProjectiles advances a collection, removing spent entries in place.
func stepProjectiles(list []*object.Projectile, step func(*object.Projectile) bool) []*object.Projectile {
	for i := len(list) - 1; i >= 0; i-- {
		if step(list[i]) {
			list = append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// updateMissiles steers homing missiles and launches any staggered ones
// whose slot has come up.
func (g *Game) updateMissiles() {
	w := g.w

	if len(w.Launches) > 0 {
		kept := w.Launches[:0]
		for _, l := range w.Launches {
			if w.Now < l.At {
				kept = append(kept, l)
				continue
			}
			p := w.Player
			w.Missiles = append(w.Missiles, object.NewMissile(p.X, p.Y-p.H/2, l.Target))
		}
		w.Launches = kept
	}

	for i := len(w.Missiles) - 1; i >= 0; i-- {
		if w.Missiles[i].Step(w.Arena, g.nearestTarget) {
			w.Missiles = append(w.Missiles[:i], w.Missiles[i+1:]...)
		}
	}
}

// nearestTarget returns the closest live enemy or boss to (x, y), or nil.
func (g *Game) nearestTarget(x, y float64) object.Target {
	w := g.w
	var best object.Target
	bestDist := math.Inf(1)
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		if d := physics.DistanceSquared(x, y, e.X, e.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	if w.Boss != nil && w.Boss.Alive() {
		if d := physics.DistanceSquared(x, y, w.Boss.X, w.Boss.Y); d < bestDist {
			best = w.Boss
		}
	}
	return best
}

func (g *Game) updateExplosions() {
	w := g.w
	kept := w.Explosions[:0]
	for _, e := range w.Explosions {
		if !e.Step() {
			kept = append(kept, e)
		}
	}
	w.Explosions = kept
}

// updatePowerUps drops pickups and collects those the ship touches.
func (g *Game) updatePowerUps() {
	w := g.w
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		p := w.PowerUps[i]
		gone := p.Step(w.Arena)
		if !gone && !w.Transitioning() && p.Touches(w.Player.X, w.Player.Y) {
			p.Collected = true
			g.collect(p.Type)
			gone = true
		}
		if gone {
			w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
		}
	}
}

func (g *Game) collect(typ object.PowerUpType) {
	l := &g.w.Ledger
	switch typ {
	case object.PowerUpAttack:
		addStack(&l.AttackStacks)
	case object.PowerUpDefense:
		addStack(&l.DefenseStacks)
	}
	g.emit(CuePowerUp)
}

func (g *Game) updateBoss() {
	w := g.w
	if w.Boss == nil {
		return
	}
	bullets, missiles := w.Boss.Step(w.Now, w.Arena, w.Player.X, w.Player.Y)
	w.BossBullets = append(w.BossBullets, bullets...)
	w.BossMissiles = append(w.BossMissiles, missiles...)
}

// updateDrones flies the support drones and collects their shots.
func (g *Game) updateDrones() {
	w := g.w
	p := w.Player
	kept := w.Drones[:0]
	for _, d := range w.Drones {
		shot, expired := d.Step(p.X, p.Y, g.nearestTarget(d.X, d.Y))
		if shot != nil {
			w.PlayerBullets = append(w.PlayerBullets, shot)
		}
		if !expired {
			kept = append(kept, d)
		}
	}
	w.Drones = kept
}
