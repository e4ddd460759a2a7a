package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfall/internal/ability"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/game"
	"github.com/tomz197/starfall/internal/input"
	"github.com/tomz197/starfall/internal/loop/config"
	"github.com/tomz197/starfall/internal/store"
)

// CuePlayer turns game cues into sound.
type CuePlayer interface {
	Play(cue game.Cue)
}

// Options configures a client.
type Options struct {
	Logger       *log.Logger
	Store        store.HighScoreStore
	Ship         string // Preselected ship in the menu
	Seed         int64  // 0 picks a time-based seed
	Constrained  bool
	Sounds       CuePlayer         // Optional
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
	Shutdown     <-chan struct{}   // Closed when the host is going down
}

// Client handles input, rendering and screens for a single terminal.
type Client struct {
	opts         Options
	log          *log.Logger
	state        *ClientState
	session      *Session
	canvas       *draw.Canvas
	frame        *draw.Frame
	styles       draw.Styles
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	renderWidth  int
	renderHeight int
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Store == nil {
		opts.Store = &store.Memory{}
	}

	state := NewClientState()
	state.ShipIndex = shipIndex(opts.Ship)

	termWidth, termHeight, _ := opts.TermSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight-config.HUDRows, game.ArenaWidth, game.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow+1)

	return &Client{
		opts:         opts,
		log:          opts.Logger,
		state:        state,
		canvas:       canvas,
		frame:        draw.NewFrame(w, offsetCol, offsetRow),
		styles:       draw.NewStyles(w),
		writer:       w,
		inputStream:  input.StartStream(bufio.NewReader(r)),
		lastInput:    time.Now(),
		termSizeFunc: opts.TermSizeFunc,
		renderWidth:  renderWidth,
		renderHeight: renderHeight,
	}
}

// Run drives the Input -> Update -> Draw cycle at a fixed frame rate until
// the player quits, the input closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.EnterScreen(c.writer)
	defer draw.LeaveScreen(c.writer)
	defer func() {
		if c.session != nil {
			c.session.Stop()
		}
	}()

	lastTime := time.Now()
	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		c.processInput()
		c.processShutdown()
		c.updateScreen()

		switch c.state.Screen {
		case ScreenShipSelect:
			c.updateShipSelect(ctx)
		case ScreenPlaying:
			c.updatePlaying()
		case ScreenGameOver:
			c.updateGameOver()
		case ScreenShutdown:
			c.updateShutdown()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}
	return nil
}

func (c *Client) processInput() {
	c.state.prevInput = c.state.Input
	c.state.Input = c.inputStream.Read()

	idle := time.Since(c.lastInput).Seconds()
	switch {
	case c.state.Input != (input.Intent{}):
		c.lastInput = time.Now()
		c.state.isInactive = false
	case idle > config.InactivityDisconnectUser:
		c.log.Info("disconnecting idle player")
		c.state.Running = false
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		if c.inputStream.Closed() {
			c.log.Debug("input closed")
		}
		c.state.Running = false
	}
}

func (c *Client) processShutdown() {
	if c.opts.Shutdown == nil || c.state.Screen == ScreenShutdown {
		return
	}
	select {
	case <-c.opts.Shutdown:
		if c.session != nil {
			c.session.Stop()
		}
		c.state.Screen = ScreenShutdown
		c.state.shutdownTimer = config.ShutdownDisplaySeconds
	default:
	}
}

// updateScreen handles terminal resize, clamping to the max render size.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	if renderWidth == c.renderWidth && renderHeight == c.renderHeight &&
		offsetCol == c.canvas.OffsetCol() && offsetRow+1 == c.canvas.OffsetRow() {
		return
	}

	c.renderWidth, c.renderHeight = renderWidth, renderHeight
	c.frame.Clear()
	c.canvas.Resize(renderWidth, renderHeight-config.HUDRows)
	c.canvas.SetOffset(offsetCol, offsetRow+1)
	c.canvas.ForceRedraw()
	c.frame.SetOrigin(offsetCol, offsetRow)
}

// clampTermSize clamps the terminal to the render limits and computes the
// offset that centers the play area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, config.MinTermWidth), config.MaxTermWidth)
	renderHeight = min(max(termHeight, config.MinTermHeight), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

func (c *Client) updateShipSelect(ctx context.Context) {
	st := c.state
	n := len(ability.Ships)
	switch {
	case st.pressed(func(in input.Intent) bool { return in.Left || in.MoveY < 0 }):
		st.ShipIndex = (st.ShipIndex + n - 1) % n
	case st.pressed(func(in input.Intent) bool { return in.Right || in.MoveY > 0 }):
		st.ShipIndex = (st.ShipIndex + 1) % n
	}
	if st.Input.Confirm || st.pressed(func(in input.Intent) bool { return in.Fire }) {
		c.startGame(ctx)
	}
}

func (c *Client) startGame(ctx context.Context) {
	ship := ability.Ships[c.state.ShipIndex]
	seed := c.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.session = NewSession(game.Options{
		Rng:         rand.New(rand.NewSource(seed)),
		Logger:      c.log,
		Store:       c.opts.Store,
		Ship:        ship.ID,
		Constrained: c.opts.Constrained,
	})
	c.session.Start(ctx)
	c.log.Debug("run started", "ship", ship.ID, "seed", seed)
	c.state.Screen = ScreenPlaying
}

func (c *Client) updatePlaying() {
	c.session.SetIntent(c.state.Input)
	c.playCues()
	if snap := c.session.Snapshot(); snap != nil && snap.HUD.Phase == game.PhaseGameOver {
		c.state.Screen = ScreenGameOver
	}
}

func (c *Client) updateGameOver() {
	c.playCues()
	if c.state.Input.Confirm {
		c.session.Restart()
		c.state.Screen = ScreenPlaying
	}
}

func (c *Client) updateShutdown() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}

func (c *Client) playCues() {
	for {
		select {
		case cue := <-c.session.Cues():
			if c.opts.Sounds != nil {
				c.opts.Sounds.Play(cue)
			}
		default:
			return
		}
	}
}

func shipIndex(id string) int {
	want := ability.ShipOrDefault(id).ID
	for i, s := range ability.Ships {
		if s.ID == want {
			return i
		}
	}
	return 0
}
