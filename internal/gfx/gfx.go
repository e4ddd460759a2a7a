// Package gfx adapts the game to an ebiten window.
package gfx

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/store"
)

// CuePlayer turns game cues into sound.
type CuePlayer interface {
	Play(cue game.Cue)
}

// Options configures the window front-end.
type Options struct {
	Logger      *log.Logger
	Store       store.HighScoreStore
	Ship        string
	Seed        int64 // 0 picks a time-based seed
	Constrained bool
	Sounds      CuePlayer // Optional
}

type screen int

const (
	screenShipSelect screen = iota
	screenPlaying
	screenGameOver
)

// Game implements ebiten.Game. ebiten's fixed update rate is the tick driver.
type Game struct {
	opts      Options
	log       *log.Logger
	screen    screen
	shipIndex int
	game      *game.Game
	snap      game.Snapshot
	whiteImg  *ebiten.Image
}

var _ ebiten.Game = (*Game)(nil)

// New creates the adapter on the ship select screen.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Store == nil {
		opts.Store = &store.Memory{}
	}
	g := &Game{opts: opts, log: opts.Logger}
	want := ability.ShipOrDefault(opts.Ship).ID
	for i, s := range ability.Ships {
		if s.ID == want {
			g.shipIndex = i
		}
	}
	return g
}

// Run opens the window and blocks until it closes.
func Run(opts Options) error {
	ebiten.SetWindowSize(game.ArenaWidth, game.ArenaHeight)
	ebiten.SetWindowTitle("Starfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.TickRate)
	return ebiten.RunGame(New(opts))
}

// Update advances one tick.
func (g *Game) Update() error {
	return g.update(pollKeys())
}

func (g *Game) update(k keys) error {
	if k.quit {
		return ebiten.Termination
	}

	switch g.screen {
	case screenShipSelect:
		n := len(ability.Ships)
		switch {
		case k.prev:
			g.shipIndex = (g.shipIndex + n - 1) % n
		case k.next:
			g.shipIndex = (g.shipIndex + 1) % n
		}
		if k.confirm || k.fire {
			g.start()
		}
	case screenPlaying:
		g.game.Tick(game.TickMS, k.intent())
		g.flushCues()
		g.snap = g.game.Snapshot()
		if g.game.Over() {
			g.screen = screenGameOver
		}
	case screenGameOver:
		g.flushCues()
		if k.confirm {
			g.start()
		}
	}
	return nil
}

func (g *Game) start() {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ship := ability.Ships[g.shipIndex]
	g.game = game.New(game.Options{
		Rng:         rand.New(rand.NewSource(seed)),
		Logger:      g.log,
		Store:       g.opts.Store,
		Ship:        ship.ID,
		Constrained: g.opts.Constrained,
	})
	g.snap = g.game.Snapshot()
	g.screen = screenPlaying
	g.log.Debug("run started", "ship", ship.ID, "seed", seed)
}

func (g *Game) flushCues() {
	for _, c := range g.game.DrainEvents() {
		if g.opts.Sounds != nil {
			g.opts.Sounds.Play(c)
		}
	}
}

// Layout keeps the arena resolution and lets ebiten scale the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ArenaWidth, game.ArenaHeight
}
