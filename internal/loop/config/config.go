// Package config centralizes the front-end loop parameters.
package config

import (
	"time"

	"github.com/tomz197/starfall/internal/game"
)

// Tick driver. Entity motion is tuned per tick, so the rate is fixed.
const (
	TickRate  = game.TickRate
	TickTime  = time.Second / TickRate
	MaxStepMS = 250.0 // dt ceiling after a stall, e.g. a suspended laptop
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution. Larger terminals get a centered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
	MinTermWidth  = 40
	MinTermHeight = 12
	HUDRows       = 2 // Status line on top, ability line at the bottom
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show the shutdown message before disconnecting
	ShutdownWait           = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Cue buffer between the tick goroutine and the renderer. Cues beyond this
// are dropped rather than stalling the simulation.
const CueBuffer = 64
