package ability

import (
	"fmt"
	"math"
)

// State is the externally visible phase of an ability.
type State int

const (
	Ready State = iota
	OnCooldown
	Active
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case OnCooldown:
		return "cooldown"
	default:
		return "ready"
	}
}

// Ability is one slot's runtime state. Times are simulation milliseconds.
type Ability struct {
	Config
	LastActivated float64
	Active        bool
	Timer         float64 // ms of effect left while Active
	Released      bool    // One-shot effect already fired this activation
}

// New creates a ready ability of the given kind.
func New(kind Kind) *Ability {
	a := &Ability{Config: GetConfig(kind)}
	a.Reset()
	return a
}

// Reset puts the ability back to Ready with no effect running.
func (a *Ability) Reset() {
	a.LastActivated = math.Inf(-1)
	a.Active = false
	a.Timer = 0
	a.Released = false
}

// State reports the ability phase at time now.
func (a *Ability) State(now float64) State {
	if a.Active {
		return Active
	}
	if now-a.LastActivated < a.Cooldown {
		return OnCooldown
	}
	return Ready
}

// TryActivate starts the ability if it is Ready. A rejected call changes nothing.
func (a *Ability) TryActivate(now float64) bool {
	if a.State(now) != Ready {
		return false
	}
	a.LastActivated = now
	a.Active = true
	a.Timer = a.Duration
	a.Released = false
	return true
}

// Tick counts the effect timer down by dt ms. Returns true on the tick the
// effect ends.
func (a *Ability) Tick(dt float64) bool {
	if !a.Active {
		return false
	}
	a.Timer -= dt
	if a.Timer <= 0 {
		a.Timer = 0
		a.Active = false
		return true
	}
	return false
}

// Finish drops the Active state while keeping the cooldown running.
func (a *Ability) Finish() {
	a.Active = false
	a.Timer = 0
}

// Refund cancels an activation that had nothing to act on.
func (a *Ability) Refund() {
	a.Reset()
}

// Remaining returns the cooldown left at time now, in ms.
func (a *Ability) Remaining(now float64) float64 {
	left := a.Cooldown - (now - a.LastActivated)
	if left < 0 || math.IsNaN(left) {
		return 0
	}
	return left
}

// Elapsed returns the fraction of the active duration already spent.
func (a *Ability) Elapsed() float64 {
	if !a.Active || a.Duration <= 0 {
		return 0
	}
	return 1 - a.Timer/a.Duration
}

// Label is the HUD text: "Active", "Ready" or the seconds left.
func (a *Ability) Label(now float64) string {
	switch a.State(now) {
	case Active:
		return "Active"
	case OnCooldown:
		return fmt.Sprintf("%.1fs", a.Remaining(now)/1000)
	default:
		return "Ready"
	}
}
