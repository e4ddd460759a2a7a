package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/store"
)

func newTestGame(t *testing.T, ship string) *Game {
	t.Helper()
	return New(Options{
		Rng:    rand.New(rand.NewSource(1)),
		Logger: log.New(io.Discard),
		Ship:   ship,
	})
}

// placeEnemy puts a stationary, non-shooting enemy at (x, y).
func placeEnemy(g *Game, x, y float64) *object.Enemy {
	e := object.NewBonusEnemy(x, 0, "#ffffff")
	e.Kind = object.EnemyBasic
	e.Y = y
	g.w.Enemies = append(g.w.Enemies, e)
	return e
}

// placeBoss puts a level-appropriate boss at (x, y).
func placeBoss(g *Game, x, y float64) *object.Boss {
	b := object.NewBoss(g.w.Arena, g.w.Ledger.Level)
	b.X, b.Y = x, y
	g.w.Boss = b
	return b
}

func countCue(cues []Cue, c Cue) int {
	n := 0
	for _, got := range cues {
		if got == c {
			n++
		}
	}
	return n
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, "")
	l := g.Ledger()
	assert.Equal(t, 1, l.Level)
	assert.Equal(t, 100, l.Health)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, "vanguard", g.w.Ship.ID)
	assert.Equal(t, BossScoreInterval, g.w.NextBossScore)

	s := g.Snapshot()
	require.Len(t, s.HUD.Banners, 1)
	assert.Equal(t, "LEVEL 1 START", s.HUD.Banners[0].Text)
	assert.Equal(t, "Ready", s.HUD.Abilities[2].Label)
}

func TestTickMovesPlayerAndFires(t *testing.T) {
	g := newTestGame(t, "vanguard")
	x := g.w.Player.X

	g.Tick(250, input.Intent{MoveX: 1, Fire: true})
	assert.Equal(t, x+5, g.w.Player.X)
	require.Len(t, g.w.PlayerBullets, 1)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueShoot))
	assert.Empty(t, g.DrainEvents())
}

func TestTickIgnoresNegativeDelta(t *testing.T) {
	g := newTestGame(t, "vanguard")
	g.Tick(-50, input.Intent{})
	assert.Equal(t, 0.0, g.w.Now)
}

func TestPointerControlJumpsToTarget(t *testing.T) {
	g := newTestGame(t, "vanguard")
	g.Tick(TickMS, input.Intent{HasTarget: true, TargetX: 100, TargetY: 300})
	assert.Equal(t, 100.0, g.w.Player.X)
	assert.Equal(t, 300.0, g.w.Player.Y)
}

func TestGameOverExactlyOnce(t *testing.T) {
	mem := &store.Memory{}
	g := New(Options{Rng: rand.New(rand.NewSource(3)), Logger: log.New(io.Discard), Store: mem})
	w := g.w
	w.Player.Health = 10
	g.addScore(700)

	p := w.Player
	for i := 0; i < 3; i++ {
		w.BossBullets = append(w.BossBullets, object.NewBossShot(p.X, p.Y, 6, 10, 0, 0, 20))
	}
	g.resolveCollisions()

	assert.Equal(t, 0, p.Health)
	assert.True(t, g.Over())
	assert.Empty(t, w.BossBullets)

	g.hitPlayer(object.NewBossShot(p.X, p.Y, 6, 10, 0, 0, 20))
	g.gameOver()
	g.Tick(TickMS, input.Intent{Fire: true})

	assert.Equal(t, 0, p.Health)
	assert.Equal(t, 1, countCue(g.DrainEvents(), CueGameOver))
	assert.Equal(t, 1, mem.Saves)
	high, err := mem.Load()
	require.NoError(t, err)
	assert.Equal(t, 700, high)
}

func TestRestartKeepsHighScore(t *testing.T) {
	mem := &store.Memory{}
	require.NoError(t, mem.Save(4000))

	g := New(Options{Rng: rand.New(rand.NewSource(3)), Logger: log.New(io.Discard), Store: mem})
	assert.Equal(t, 4000, g.Ledger().HighScore)

	g.addScore(4500)
	g.gameOver()
	g.Restart()

	assert.False(t, g.Over())
	assert.Equal(t, 0, g.Ledger().Score)
	assert.Equal(t, 4500, g.Ledger().HighScore)
	assert.Equal(t, 0, g.w.LastBossThreshold)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := newTestGame(t, "striker")
	e := placeEnemy(g, 100, 100)
	placeBoss(g, 400, 50)
	g.w.Missiles = append(g.w.Missiles, object.NewMissile(400, 500, e))

	s := g.Snapshot()
	s.Enemies[0].Y = 999
	s.Boss.Health = 1
	s.Player.X = -1

	assert.Equal(t, 100.0, e.Y)
	assert.Equal(t, 400, g.w.Boss.Health)
	assert.NotEqual(t, -1.0, g.w.Player.X)
	assert.Nil(t, s.Missiles[0].Target)
	assert.NotNil(t, g.w.Missiles[0].Target)
	assert.True(t, s.HUD.BossVisible)
	assert.Equal(t, 1.0, s.HUD.BossHealth)
}

// countingStore records every Save call, including ones that change nothing.
type countingStore struct {
	store.Memory
	calls int
}

func (s *countingStore) Save(score int) error {
	s.calls++
	return s.Memory.Save(score)
}

func TestGameOverSavesOnlyNewBest(t *testing.T) {
	scores := &countingStore{}
	require.NoError(t, scores.Memory.Save(5000))

	g := New(Options{Rng: rand.New(rand.NewSource(3)), Logger: log.New(io.Discard), Store: scores})
	g.addScore(700)
	g.gameOver()
	assert.Equal(t, 0, scores.calls)

	g.Restart()
	g.addScore(6000)
	g.gameOver()
	assert.Equal(t, 1, scores.calls)
	high, err := scores.Load()
	require.NoError(t, err)
	assert.Equal(t, 6000, high)
}
