package loop

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/loop/config"
)

// Session runs one game on its own tick driver. The renderer talks to it
// through SetIntent, Snapshot and Cues; only the tick goroutine touches the
// game itself.
type Session struct {
	opts     game.Options
	driver   Driver
	snapshot atomic.Pointer[game.Snapshot]
	cues     chan game.Cue

	mu     sync.Mutex
	game   *game.Game
	intent input.Intent
	ctx    context.Context
}

// NewSession creates a session with a fresh game. Call Start to begin ticking.
func NewSession(opts game.Options) *Session {
	s := &Session{
		opts: opts,
		game: game.New(opts),
		cues: make(chan game.Cue, config.CueBuffer),
	}
	s.publish()
	return s
}

// Start begins ticking under ctx.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
	s.driver.Start(ctx, s.step)
}

// Stop halts the ticker and waits for it to exit.
func (s *Session) Stop() {
	s.driver.Stop()
}

// Restart throws the game away and starts a new one on a new registration.
func (s *Session) Restart() {
	s.driver.Stop()

	s.mu.Lock()
	s.game = game.New(s.opts)
	s.intent = input.Intent{}
	ctx := s.ctx
	s.mu.Unlock()

	s.publish()
	if ctx != nil {
		s.driver.Start(ctx, s.step)
	}
}

// SetIntent records the latest input. Held controls are replaced; one-shot
// presses are latched until the next tick consumes them.
func (s *Session) SetIntent(in input.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := s.intent.Slots
	for i := range slots {
		slots[i] = slots[i] || in.Slots[i]
	}
	confirm := s.intent.Confirm || in.Confirm
	s.intent = in
	s.intent.Slots = slots
	s.intent.Confirm = confirm
}

// Snapshot returns the state published by the last tick.
func (s *Session) Snapshot() *game.Snapshot {
	return s.snapshot.Load()
}

// Cues delivers sound cues. Cues are dropped while the buffer is full.
func (s *Session) Cues() <-chan game.Cue {
	return s.cues
}

func (s *Session) step(dt float64) {
	s.mu.Lock()
	in := s.intent
	s.intent.Slots = [3]bool{}
	s.intent.Confirm = false
	s.game.Tick(dt, in)
	cues := s.game.DrainEvents()
	snap := s.game.Snapshot()
	s.mu.Unlock()

	s.snapshot.Store(&snap)
	for _, c := range cues {
		select {
		case s.cues <- c:
		default:
		}
	}
}

func (s *Session) publish() {
	s.mu.Lock()
	snap := s.game.Snapshot()
	s.mu.Unlock()
	s.snapshot.Store(&snap)
}
