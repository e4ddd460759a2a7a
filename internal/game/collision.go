package game

import (
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/physics"
)

// resolveCollisions runs once per tick after movement.
func (g *Game) resolveCollisions() {
	g.playerShotsVsHostiles()
	g.missilesVsHostiles()
	if !g.w.Transitioning() {
		g.hostileShotsVsPlayer()
	}
}

// enemyRect is an enemy's hit box including its wing padding.
func enemyRect(e *object.Enemy) physics.Rect {
	return e.Rect(object.EnemyPadX)
}

// playerShotsVsHostiles resolves player bullets against enemies, then the
// boss. The boss check does not depend on the enemy scan, so one bullet can
// hit an enemy and the boss in the same tick; it is consumed either way.
func (g *Game) playerShotsVsHostiles() {
	w := g.w
	for i := len(w.PlayerBullets) - 1; i >= 0; i-- {
		b := w.PlayerBullets[i]
		if b.IsDestroyed() {
			continue
		}
		br := b.Rect(0)

		for j := len(w.Enemies) - 1; j >= 0; j-- {
			e := w.Enemies[j]
			if !e.Alive() || !br.Overlaps(enemyRect(e)) {
				continue
			}
			e.Health -= b.Damage * g.comboFactor() * w.Ledger.attackFactor()
			b.MarkDestroyed()
			if e.Health <= 0 {
				w.Enemies = append(w.Enemies[:j], w.Enemies[j+1:]...)
				g.killEnemy(e, g.killScore(), object.ExplosionBurst, ExplosionKillSize, true)
			}
			break
		}

		if boss := w.Boss; boss != nil && boss.Alive() && br.Overlaps(boss.Rect(0)) {
			b.MarkDestroyed()
			g.damageBoss(roundHalfUp(g.bossHitDamage() * w.Ledger.attackFactor()))
		}
	}
	w.PlayerBullets = pruneProjectiles(w.PlayerBullets)
}

// missilesVsHostiles detonates homing missiles on whatever they touch first.
func (g *Game) missilesVsHostiles() {
	w := g.w
	kept := w.Missiles[:0]
	for _, m := range w.Missiles {
		mr := m.Rect(0)
		for j := len(w.Enemies) - 1; j >= 0; j-- {
			e := w.Enemies[j]
			if !e.Alive() || !mr.Overlaps(enemyRect(e)) {
				continue
			}
			e.Health -= m.Damage * g.comboFactor() * w.Ledger.attackFactor()
			m.MarkDestroyed()
			if e.Health <= 0 {
				w.Enemies = append(w.Enemies[:j], w.Enemies[j+1:]...)
				g.killEnemy(e, g.killScore(), object.ExplosionBurst, ExplosionKillSize, true)
			}
			break
		}
		if !m.IsDestroyed() && w.Boss != nil && w.Boss.Alive() && mr.Overlaps(w.Boss.Rect(0)) {
			m.MarkDestroyed()
			w.Explosions = append(w.Explosions, object.NewExplosion(m.X, m.Y, ExplosionKillSize, object.ExplosionBurst))
			g.damageBoss(roundHalfUp(m.Damage * w.Ledger.attackFactor()))
		}
		if !m.IsDestroyed() {
			kept = append(kept, m)
		}
	}
	w.Missiles = kept
}

// hostileShotsVsPlayer applies enemy and boss fire to the ship.
func (g *Game) hostileShotsVsPlayer() {
	w := g.w
	pr := w.Player.Rect(object.PlayerPadX)
	for _, list := range []*[]*object.Projectile{&w.EnemyBullets, &w.BossBullets, &w.BossMissiles} {
		for _, p := range *list {
			if p.IsDestroyed() || !p.Rect(0).Overlaps(pr) {
				continue
			}
			p.MarkDestroyed()
			g.hitPlayer(p)
		}
		*list = pruneProjectiles(*list)
	}
}

// hitPlayer applies one hostile projectile. An active shield deflects it
// before any mitigation is considered.
func (g *Game) hitPlayer(p *object.Projectile) {
	w := g.w
	if g.shieldUp() {
		w.Explosions = append(w.Explosions, object.NewExplosion(p.X, p.Y, ExplosionSparkSize, object.ExplosionSpark))
		g.emit(CueDeflect)
		return
	}
	if w.BonusRound() || w.Progress.Phase == PhaseGameOver {
		return
	}
	dead := w.Player.TakeDamage(w.Ledger.mitigate(p.Damage))
	w.Ledger.Health = w.Player.Health
	g.emit(CueHit)
	if dead {
		g.gameOver()
	}
}

// killEnemy books a dead enemy. The caller has already removed it from the
// collection.
func (g *Game) killEnemy(e *object.Enemy, points int, variant object.ExplosionVariant, size float64, drop bool) {
	w := g.w
	e.Kill()
	if drop && g.rng.Float64() < DropChance {
		typ := object.PowerUpAttack
		if g.rng.Float64() >= 0.5 {
			typ = object.PowerUpDefense
		}
		w.PowerUps = append(w.PowerUps, object.NewPowerUp(e.X, e.Y, typ))
	}
	w.Explosions = append(w.Explosions, object.NewExplosion(e.X, e.Y, size, variant))
	w.Ledger.Kills++
	w.Ledger.Credits += CreditsKill
	g.addScore(points)
	g.emit(CueExplosion)
	g.registerKill()
	g.checkBossThreshold()
}

// damageBoss subtracts health and runs the boss death when it drops to zero.
func (g *Game) damageBoss(amount int) {
	b := g.w.Boss
	if b == nil || !b.Alive() {
		return
	}
	if b.TakeDamage(amount) {
		g.killBoss()
	}
}

func (g *Game) killBoss() {
	w := g.w
	b := w.Boss
	b.Kill()
	w.Boss = nil
	w.Explosions = append(w.Explosions, object.NewExplosion(b.X, b.Y, ExplosionBossSize, object.ExplosionBurst))
	w.BossBullets = nil
	w.BossMissiles = nil
	w.Ledger.Credits += CreditsBoss
	g.addScore(ScoreBoss)
	g.emit(CueBossDefeat)
	g.log.Debug("boss defeated", "level", w.Ledger.Level, "score", w.Ledger.Score)
	g.scheduleRoundChange()
}

func (g *Game) killScore() int {
	if g.w.BonusRound() {
		return ScoreBonusKill
	}
	return ScoreKill
}

func (g *Game) comboFactor() float64 {
	if g.w.Combo.Active {
		return ComboDamageFactor
	}
	return 1
}

func (g *Game) bossHitDamage() float64 {
	if g.w.Combo.Active {
		return BossComboDamage
	}
	return BossHitDamage
}

// pruneProjectiles drops consumed projectiles, keeping order.
func pruneProjectiles(list []*object.Projectile) []*object.Projectile {
	kept := list[:0]
	for _, p := range list {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
