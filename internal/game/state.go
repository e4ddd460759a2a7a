package game

import (
	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/object"
)

// Phase is the top-level progression state.
type Phase int

const (
	PhasePlaying    Phase = iota
	PhaseRoundDelay       // Short pause after a boss kill
	PhaseBonusRound       // Invulnerable bonus-enemy rush
	PhaseTransition       // Scripted level-change sequence
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRoundDelay:
		return "round-delay"
	case PhaseBonusRound:
		return "bonus-round"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "game-over"
	default:
		return "playing"
	}
}

// Stage is a step of the level-transition sequence.
type Stage int

const (
	StageNone Stage = iota
	StageMoveToCenter
	StageMoveUp
	StageShowLevel
	StageShowCheck
	StageFadeOut
	StageShowNext
	StageFadeNext
)

// Progress is the progression state machine. Every timer counts down in
// simulation ms and is advanced by the tick, never by callbacks.
type Progress struct {
	Phase Phase
	Timer float64 // ms left in the current phase or stage
	Stage Stage
	Next  Phase // Where a round delay leads

	// Ship position when the current movement stage began.
	StartX, StartY float64
}

// Combo tracks the kill-chain damage bonus.
type Combo struct {
	Kills  []float64 // Kill timestamps inside the window
	Active bool
	Timer  float64 // ms left while Active
}

// BannerKind tells renderers how to style a banner.
type BannerKind int

const (
	BannerLevelStart BannerKind = iota
	BannerCombo
	BannerBonus
)

// Banner is a short-lived text overlay.
type Banner struct {
	Kind  BannerKind
	Text  string
	Timer float64 // ms left
}

// launch is a homing missile waiting for its stagger slot.
type launch struct {
	At     float64 // Simulation time to launch
	Target object.Target
}

// World is the whole mutable simulation state. It is owned by one Game and
// only ever touched from its Tick.
type World struct {
	Arena object.Arena
	Now   float64 // Simulation clock, ms

	Player    *object.Player
	Ship      ability.Ship
	Abilities [3]*ability.Ability

	PlayerBullets []*object.Projectile
	EnemyBullets  []*object.Projectile
	BossBullets   []*object.Projectile
	BossMissiles  []*object.Projectile
	Missiles      []*object.Missile
	Enemies       []*object.Enemy
	Boss          *object.Boss
	Drones        []*object.Drone
	PowerUps      []*object.PowerUp
	Explosions    []*object.Explosion

	Ledger   Ledger
	Combo    Combo
	Progress Progress
	Banners  []Banner

	EnemyColor        string
	LastBossThreshold int
	NextBossScore     int
	LastSwarm         float64

	// Ability bookkeeping.
	ConeLastFire float64
	Launches     []launch
	WaveY        float64 // Wavefront sweep position; meaningful while active
}

// BonusRound reports whether the bonus round is running.
func (w *World) BonusRound() bool {
	return w.Progress.Phase == PhaseBonusRound
}

// Transitioning reports whether the level-change sequence is running.
func (w *World) Transitioning() bool {
	return w.Progress.Phase == PhaseTransition
}

// RoundPending reports whether a boss kill has queued a round change that
// has not finished yet.
func (w *World) RoundPending() bool {
	switch w.Progress.Phase {
	case PhaseRoundDelay, PhaseBonusRound, PhaseTransition:
		return true
	}
	return false
}

// findAbility returns the ship's ability of the given kind, or nil.
func (w *World) findAbility(kind ability.Kind) *ability.Ability {
	for _, a := range w.Abilities {
		if a != nil && a.Kind == kind {
			return a
		}
	}
	return nil
}

// abilityActive reports whether the ship has kind and it is running.
func (w *World) abilityActive(kind ability.Kind) bool {
	a := w.findAbility(kind)
	return a != nil && a.Active
}

// clearTransient empties every collection that does not survive a level.
func (w *World) clearTransient() {
	w.PlayerBullets = nil
	w.EnemyBullets = nil
	w.BossBullets = nil
	w.BossMissiles = nil
	w.Missiles = nil
	w.Enemies = nil
	w.Boss = nil
	w.Drones = nil
	w.Explosions = nil
	w.Launches = nil
}
