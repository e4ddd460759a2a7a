package game

import (
	"math"

	"github.com/tomz197/starfall/internal/object"
)

// spawn rolls for new enemies. Bosses only come from checkBossThreshold.
func (g *Game) spawn() {
	w := g.w
	switch w.Progress.Phase {
	case PhaseGameOver, PhaseTransition:
		return
	case PhaseBonusRound:
		if g.rng.Float64() < BonusEnemyChance {
			g.spawnBonusEnemy()
		}
		return
	}

	chance := EnemySpawnChance
	if g.opts.Constrained {
		chance = EnemySpawnChanceConstrained
	}
	if g.rng.Float64() < chance {
		g.spawnEnemy()
	}
	g.maybeSpawnSwarm()
}

// spawnX picks a horizontal spawn position in [margin, width-margin).
func (g *Game) spawnX() float64 {
	w := g.w
	return g.rng.Float64()*(w.Arena.Width-2*EnemySpawnMargin) + EnemySpawnMargin
}

func (g *Game) spawnEnemy() {
	w := g.w
	limit := EnemyCap
	if g.opts.Constrained {
		limit = EnemyCapConstrained
	}
	if len(w.Enemies) >= limit || w.Boss != nil || w.RoundPending() {
		return
	}
	x := g.spawnX()
	speed := EnemyMinSpeed + g.rng.Float64()*EnemySpeedRange
	cooldown := EnemyMinCooldown + g.rng.Float64()*EnemyCooldownRange
	w.Enemies = append(w.Enemies, object.NewEnemy(x, speed, cooldown, w.EnemyColor))
}

func (g *Game) maybeSpawnSwarm() {
	w := g.w
	if w.Ledger.Level < SwarmMinLevel || w.Boss != nil || w.RoundPending() {
		return
	}
	if w.Now-w.LastSwarm <= SwarmInterval {
		return
	}
	if g.rng.Float64() >= SwarmChance {
		return
	}
	g.spawnSwarm()
	w.LastSwarm = w.Now
}

func (g *Game) spawnSwarm() {
	w := g.w
	lo, hi := SwarmMin, SwarmMax
	if g.opts.Constrained {
		lo, hi = SwarmMinConstrained, SwarmMaxConstrained
	}
	n := lo + g.rng.Intn(hi-lo+1)
	for i := 0; i < n; i++ {
		offset := 2 * math.Pi / float64(n) * float64(i)
		x := g.spawnX()
		y := SwarmStartY - g.rng.Float64()*SwarmStartJitter
		speed := SwarmMinSpeed + g.rng.Float64()*SwarmSpeedRange
		cooldown := SwarmMinCooldown + g.rng.Float64()*SwarmCooldownRange
		w.Enemies = append(w.Enemies, object.NewDrone(x, y, speed, cooldown, offset))
	}
	g.log.Debug("drone swarm", "size", n, "level", w.Ledger.Level)
}

func (g *Game) spawnBonusEnemy() {
	w := g.w
	x := g.spawnX()
	speed := BonusEnemyMinSpeed + g.rng.Float64()*BonusEnemySpeedRange
	w.Enemies = append(w.Enemies, object.NewBonusEnemy(x, speed, g.randomColor()))
}

// checkBossThreshold spawns the boss when the score crosses a new multiple
// of BossScoreInterval. Each threshold value spawns at most once.
func (g *Game) checkBossThreshold() {
	w := g.w
	t := w.Ledger.Score / BossScoreInterval
	if t <= 0 || t == w.LastBossThreshold {
		return
	}
	if w.Boss != nil || w.RoundPending() || w.Progress.Phase == PhaseGameOver {
		return
	}
	w.LastBossThreshold = t
	g.spawnBoss()
}

func (g *Game) spawnBoss() {
	w := g.w
	w.Boss = object.NewBoss(w.Arena, w.Ledger.Level)
	g.emit(CueBossSpawn)
	g.log.Debug("boss spawned", "level", w.Ledger.Level, "hp", w.Boss.MaxHealth, "score", w.Ledger.Score)
}
