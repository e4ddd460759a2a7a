package loop

import (
	"time"

	"github.com/tomz197/starfall/internal/input"
)

// Screen is the client's current view.
type Screen int

const (
	ScreenShipSelect Screen = iota // Pick a ship
	ScreenPlaying                  // Game running
	ScreenGameOver                 // Run ended, offer a restart
	ScreenShutdown                 // Server is going down
)

// ClientState holds per-connection state.
type ClientState struct {
	Input         input.Intent
	prevInput     input.Intent // For edge detection in menus
	Screen        Screen
	prevScreen    Screen
	ShipIndex     int // Highlighted entry in ability.Ships
	Running       bool
	delta         time.Duration
	shutdownTimer float64 // Seconds before auto-disconnect on shutdown
	isInactive    bool
	wasInactive   bool
}

// NewClientState creates the state for a fresh connection.
func NewClientState() *ClientState {
	return &ClientState{
		Screen:     ScreenShipSelect,
		prevScreen: -1,
		Running:    true,
	}
}

// pressed reports a rising edge on a held control.
func (s *ClientState) pressed(get func(input.Intent) bool) bool {
	return get(s.Input) && !get(s.prevInput)
}
