package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/loop"
	loopconfig "github.com/tomz197/starfall/internal/loop/config"
	"github.com/tomz197/starfall/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ssh"})

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	logger.SetLevel(settings.Level())

	host := config.GetEnv("SSH_HOST", settings.SSH.Host)
	port := config.GetEnv("SSH_PORT", settings.SSH.Port)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", settings.SSH.HostKey)
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKey", hostKeyPath, "workingDir", workingDir)

	var scores store.HighScoreStore = &store.Memory{}
	if settings.HighScore != "" {
		fs := store.NewFileStore(settings.HighScore)
		logger.Info("high score file", "path", fs.Path())
		scores = fs
	}

	h := &sshHost{
		log:      logger,
		settings: settings,
		scores:   scores,
		shutdown: make(chan struct{}),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// TCP_NODELAY keeps key presses from being batched
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")
	h.drain(loopconfig.ShutdownWait)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// sshHost holds state shared by all SSH sessions. Every session still plays
// its own game.
type sshHost struct {
	log      *log.Logger
	settings config.Settings
	scores   store.HighScoreStore

	shutdown     chan struct{}
	shutdownOnce sync.Once
	sessions     sync.WaitGroup
}

// drain tells every connected player the server is going down and waits up
// to timeout for their sessions to end.
func (h *sshHost) drain(timeout time.Duration) {
	h.shutdownOnce.Do(func() { close(h.shutdown) })
	h.log.Info("notifying connected players about shutdown")

	finished := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		h.log.Info("all sessions ended")
	case <-time.After(timeout):
		h.log.Warn("sessions still open after shutdown wait", "wait", timeout)
	}
}

// gameMiddleware runs a game client on the session's PTY.
func (h *sshHost) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.log.With("session", uuid.New().String(), "user", sess.User())
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		c := loop.NewClient(sess, sess, loop.Options{
			Logger:       logger,
			Store:        h.scores,
			Ship:         h.settings.Ship,
			Seed:         h.settings.Seed,
			Constrained:  h.settings.Constrained,
			TermSizeFunc: sizeTracker.getSize,
			Shutdown:     h.shutdown,
		})
		if err := c.Run(sess.Context()); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
