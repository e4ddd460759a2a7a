// Package game is the headless simulation core: one owned World advanced by a
// fixed-rate Tick. Front-ends feed it input.Intent values, render Snapshots and
// drain Cues; they never touch the World directly.
package game

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/object"
	"github.com/tomz197/starfall/internal/physics"
	"github.com/tomz197/starfall/internal/store"
)

// Options configures a Game. Every field is optional.
type Options struct {
	Rng         *rand.Rand           // Seeded source for every random roll; time-seeded if nil
	Logger      *log.Logger          // Debug events; log.Default() if nil
	Store       store.HighScoreStore // High score persistence; none if nil
	Ship        string               // Ship id; ability.DefaultShip if empty or unknown
	Constrained bool                 // Low-end mode: fewer enemies, smaller swarms
}

// Game owns one run of the simulation.
type Game struct {
	opts   Options
	rng    *rand.Rand
	log    *log.Logger
	w      *World
	events []Cue
	saved  bool // High score persisted for this run
	stored int  // Best score the store held at the start of this run
}

// New creates a game at level 1, ready to tick.
func New(opts Options) *Game {
	g := &Game{opts: opts, rng: opts.Rng, log: opts.Logger}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = log.Default()
	}
	g.Restart()
	return g
}

// Restart throws the current run away and starts a new one with the same
// options. Anything scheduled by the old run is discarded with its World.
func (g *Game) Restart() {
	high := 0
	g.stored = 0
	if g.w != nil {
		high = g.w.Ledger.HighScore
	}
	if g.opts.Store != nil {
		stored, err := g.opts.Store.Load()
		switch {
		case err == nil:
			g.stored = stored
			high = max(high, stored)
		case !errors.Is(err, store.ErrNoHighScore):
			g.log.Warn("failed to load high score", "err", err)
		}
	}

	ship := ability.ShipOrDefault(g.opts.Ship)
	arena := object.Arena{Width: ArenaWidth, Height: ArenaHeight}
	g.w = &World{
		Arena:     arena,
		Player:    object.NewPlayer(arena, ship.ID, ship.Width, ship.Height, ship.Speed),
		Ship:      ship,
		Abilities: ship.Set(),
		Ledger: Ledger{
			Health:    object.PlayerMaxHealth,
			Level:     1,
			HighScore: high,
		},
		EnemyColor:    g.randomColor(),
		NextBossScore: BossScoreInterval,
		LastSwarm:     math.Inf(-1),
		ConeLastFire:  math.Inf(-1),
	}
	g.events = nil
	g.saved = false
	g.banner(BannerLevelStart, levelStartText(1), BannerTime)
	g.log.Debug("game started", "ship", ship.ID, "high", high)
}

// Restore puts the portable ledger values of rec onto the current run.
// Boss thresholds already crossed by the restored score are treated as spent.
func (g *Game) Restore(rec LedgerRecord) {
	w := g.w
	w.Ledger.Score = max(rec.Score, 0)
	w.Ledger.Level = max(rec.Level, 1)
	w.Ledger.HighScore = max(rec.HighScore, w.Ledger.HighScore, w.Ledger.Score)
	w.Player.Health = int(physics.Clamp(float64(rec.Health), 0, float64(w.Player.MaxHealth)))
	w.Ledger.Health = w.Player.Health
	w.LastBossThreshold = w.Ledger.Score / BossScoreInterval
	w.NextBossScore = nextBossScore(w.Ledger.Score)
	if w.Player.Health == 0 {
		g.gameOver()
	}
}

// Ledger returns a copy of the current ledger.
func (g *Game) Ledger() Ledger {
	return g.w.Ledger
}

// Phase returns the current progression phase.
func (g *Game) Phase() Phase {
	return g.w.Progress.Phase
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.w.Progress.Phase == PhaseGameOver
}

// Tick advances the simulation by one frame. dt is the elapsed time in ms and
// drives only the timers; entity motion is a fixed per-tick step.
func (g *Game) Tick(dt float64, in input.Intent) {
	w := g.w
	if w.Progress.Phase == PhaseGameOver {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	w.Now += dt

	g.tickCombo(dt)
	g.tickBanners(dt)
	locked := w.Transitioning()
	g.advanceProgression(dt)

	// Input stays off for the whole transition, including the tick it ends on.
	if !locked && !w.Transitioning() {
		g.updatePlayer(in)
		g.activateAbilities(in)
	}
	g.updateEnemies()
	g.updateProjectiles()
	g.updateMissiles()
	g.updateExplosions()
	g.updatePowerUps()
	g.updateAbilities(dt)
	g.updateBoss()
	g.updateDrones()

	g.resolveCollisions()
	g.spawn()

	w.Ledger.Health = w.Player.Health
}

// gameOver ends the run. Further calls are no-ops.
func (g *Game) gameOver() {
	w := g.w
	if w.Progress.Phase == PhaseGameOver {
		return
	}
	w.Progress = Progress{Phase: PhaseGameOver}
	w.Player.Shooting = false
	g.emit(CueGameOver)
	g.log.Debug("game over", "score", w.Ledger.Score, "level", w.Ledger.Level, "kills", w.Ledger.Kills)
	g.saveHighScore()
}

func (g *Game) saveHighScore() {
	if g.saved || g.opts.Store == nil {
		return
	}
	g.saved = true
	if g.w.Ledger.HighScore <= g.stored {
		return
	}
	if err := g.opts.Store.Save(g.w.Ledger.HighScore); err != nil {
		g.log.Warn("failed to save high score", "err", err)
	}
}

// addScore credits points and keeps the high score current.
func (g *Game) addScore(points int) {
	l := &g.w.Ledger
	l.Score += points
	if l.Score > l.HighScore {
		l.HighScore = l.Score
	}
}

func (g *Game) randomColor() string {
	return EnemyPalette[g.rng.Intn(len(EnemyPalette))]
}

func nextBossScore(score int) int {
	return int(math.Ceil(float64(score)/BossScoreInterval))*BossScoreInterval + BossScoreInterval
}

// roundHalfUp rounds like the classic floor(x+0.5).
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
