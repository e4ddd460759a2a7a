package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/object"
)

func TestBulletKillsEnemy(t *testing.T) {
	tests := []struct {
		name  string
		bonus bool
		score int
	}{
		{"normal", false, ScoreKill},
		{"bonus round", true, ScoreBonusKill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "vanguard")
			w := g.w
			if tt.bonus {
				w.Progress = Progress{Phase: PhaseBonusRound, Timer: BonusRoundTime}
			}
			placeEnemy(g, 300, 200)
			w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300, 200))

			g.resolveCollisions()

			assert.Empty(t, w.Enemies)
			assert.Empty(t, w.PlayerBullets)
			assert.Equal(t, tt.score, w.Ledger.Score)
			assert.Equal(t, 1, w.Ledger.Kills)
			assert.Equal(t, CreditsKill, w.Ledger.Credits)
			assert.Len(t, w.Explosions, 1)
			assert.Equal(t, 1, countCue(g.DrainEvents(), CueExplosion))
		})
	}
}

func TestBulletHitsOnlyFirstEnemy(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	older := placeEnemy(g, 300, 200)
	newer := placeEnemy(g, 302, 202)
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300, 200))

	g.resolveCollisions()

	require.Len(t, w.Enemies, 1)
	assert.Same(t, older, w.Enemies[0], "newest enemy is scanned first")
	assert.False(t, newer.Alive())
	assert.Equal(t, ScoreKill, w.Ledger.Score)
}

func TestPaddingWidensEnemyHitBox(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	placeEnemy(g, 300, 200)
	// Enemy half-width 17.5 plus 8 wing padding; bullet half-width 2.
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300+17.5+8+1.9, 200))
	g.resolveCollisions()
	assert.Empty(t, w.Enemies)

	placeEnemy(g, 300, 200)
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300+17.5+8+2, 200))
	g.resolveCollisions()
	assert.Len(t, w.Enemies, 1)
}

func TestComboBossHit(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	b := placeBoss(g, 400, 200)
	b.Health, b.MaxHealth = 50, 50
	w.Combo.Active = true
	w.Combo.Timer = ComboDuration

	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(400, 200))
	g.resolveCollisions()

	assert.Equal(t, 35, b.Health)
	assert.NotNil(t, w.Boss)
	assert.InDelta(t, 0.70, g.Snapshot().HUD.BossHealth, 1e-9)
}

func TestLevelOneBossTakes27ComboHits(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	b := placeBoss(g, 400, 200)
	require.Equal(t, 400, b.MaxHealth)
	w.Combo.Active = true
	w.Combo.Timer = 1e9

	for i := 0; i < 26; i++ {
		w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(400, 200))
		g.resolveCollisions()
	}
	require.NotNil(t, w.Boss)
	assert.Equal(t, 10, b.Health)

	w.EnemyBullets = append(w.EnemyBullets, object.NewEnemyBullet(10, 10, 3, 8, 4, 10))
	w.BossBullets = append(w.BossBullets, object.NewBossShot(10, 10, 6, 10, 0, 5, 20))
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(400, 200))
	g.resolveCollisions()

	assert.Nil(t, w.Boss)
	assert.False(t, b.Alive())
	assert.Equal(t, ScoreBoss, w.Ledger.Score)
	assert.Equal(t, CreditsBoss, w.Ledger.Credits)
	assert.Empty(t, w.BossBullets)
	assert.Len(t, w.EnemyBullets, 1, "only boss fire is cleared")
	assert.Equal(t, PhaseRoundDelay, w.Progress.Phase)
	assert.Equal(t, PhaseTransition, w.Progress.Next)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueBossDefeat))
}

func TestBulletCanHitEnemyAndBoss(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	b := placeBoss(g, 400, 200)
	placeEnemy(g, 400, 200)
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(400, 200))

	g.resolveCollisions()

	assert.Empty(t, w.Enemies)
	assert.Equal(t, 390, b.Health)
	assert.Empty(t, w.PlayerBullets)
}

func TestAttackStacksAmplifyDamage(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	w.Ledger.AttackStacks = 10
	b := placeBoss(g, 400, 200)

	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(400, 200))
	g.resolveCollisions()
	assert.Equal(t, 400-17, b.Health)
}

func TestDefenseStacksMitigate(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	w.Ledger.DefenseStacks = 5
	p := w.Player

	w.EnemyBullets = append(w.EnemyBullets, object.NewEnemyBullet(p.X, p.Y, 3, 8, 4, 20))
	g.resolveCollisions()

	assert.Equal(t, 87, p.Health)
	assert.Empty(t, w.EnemyBullets)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueHit))
}

func TestBonusRoundNoDamage(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	w.Progress = Progress{Phase: PhaseBonusRound, Timer: BonusRoundTime}
	p := w.Player

	w.BossMissiles = append(w.BossMissiles, object.NewBossShot(p.X, p.Y, 8, 15, 0, 4, 20))
	g.resolveCollisions()

	assert.Equal(t, 100, p.Health)
	assert.Empty(t, w.BossMissiles, "shot is still consumed")
}

func TestShieldDeflectsBeforeMitigation(t *testing.T) {
	g := newTestGame(t, "warden")
	w := g.w
	require.True(t, w.findAbility(ability.Aegis).TryActivate(w.Now))
	p := w.Player

	w.BossBullets = append(w.BossBullets, object.NewBossShot(p.X, p.Y, 6, 10, 0, 5, 20))
	g.resolveCollisions()

	assert.Equal(t, 100, p.Health)
	assert.Empty(t, w.BossBullets)
	require.Len(t, w.Explosions, 1)
	assert.Equal(t, object.ExplosionSpark, w.Explosions[0].Variant)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueDeflect))
}

func TestShieldSlowsNearbyShots(t *testing.T) {
	g := newTestGame(t, "warden")
	w := g.w
	require.True(t, w.findAbility(ability.Aegis).TryActivate(w.Now))
	p := w.Player

	near := object.NewEnemyBullet(p.X+50, p.Y-100, 3, 8, 4, 10)
	far := object.NewEnemyBullet(p.X+50, 100, 3, 8, 4, 10)
	w.EnemyBullets = append(w.EnemyBullets, near, far)
	nearY, farY := near.Y, far.Y

	g.updateProjectiles()

	assert.InDelta(t, nearY+1.6, near.Y, 1e-9)
	assert.InDelta(t, farY+4, far.Y, 1e-9)
}

func TestMissileDetonatesOnEnemy(t *testing.T) {
	g := newTestGame(t, "striker")
	w := g.w
	e := placeEnemy(g, 300, 200)
	m := object.NewMissile(300, 200, e)
	w.Missiles = append(w.Missiles, m)

	g.resolveCollisions()

	assert.Empty(t, w.Missiles)
	assert.Empty(t, w.Enemies)
	assert.Equal(t, ScoreKill, w.Ledger.Score)
}

func TestBossThresholdOncePerValue(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	w.Ledger.Score = BossScoreInterval - ScoreKill

	placeEnemy(g, 300, 200)
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300, 200))
	g.resolveCollisions()

	require.NotNil(t, w.Boss)
	assert.Equal(t, 1, w.LastBossThreshold)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueBossSpawn))

	// Boss gone without a round change: the same threshold must not respawn it.
	w.Boss = nil
	g.addScore(ScoreKill)
	g.checkBossThreshold()
	assert.Nil(t, w.Boss)

	// Bonus round blocks a new threshold until it ends.
	w.Ledger.Score = 2 * BossScoreInterval
	w.Progress = Progress{Phase: PhaseBonusRound, Timer: BonusRoundTime}
	g.checkBossThreshold()
	assert.Nil(t, w.Boss)

	w.Progress = Progress{Phase: PhasePlaying}
	g.checkBossThreshold()
	require.NotNil(t, w.Boss)
	assert.Equal(t, 2, w.LastBossThreshold)
}

func TestBossSpawnNeedsPositiveThreshold(t *testing.T) {
	g := newTestGame(t, "vanguard")
	g.w.Ledger.Score = BossScoreInterval - 1
	g.checkBossThreshold()
	assert.Nil(t, g.w.Boss)
}

func TestBossThresholdWaitsOutRoundDelay(t *testing.T) {
	g := newTestGame(t, "vanguard")
	w := g.w
	w.Ledger.Score = BossScoreInterval - ScoreKill
	w.Progress = Progress{Phase: PhaseRoundDelay, Timer: 1e9, Next: PhaseTransition}

	placeEnemy(g, 300, 200)
	w.PlayerBullets = append(w.PlayerBullets, object.NewPlayerBullet(300, 200))
	g.resolveCollisions()

	assert.Equal(t, BossScoreInterval, w.Ledger.Score)
	assert.Nil(t, w.Boss)
	assert.Equal(t, 0, w.LastBossThreshold, "threshold stays unspent")

	w.Progress = Progress{Phase: PhasePlaying}
	g.checkBossThreshold()
	require.NotNil(t, w.Boss)
	assert.Equal(t, 1, w.LastBossThreshold)
}
