package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/starfall/internal/audio"
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/loop"
	"github.com/tomz197/starfall/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "starfall"})

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	logger.SetLevel(settings.Level())

	// The terminal belongs to the game once raw mode is on.
	logOut, closeLog := logOutput(config.GetEnv("STARFALL_LOG_FILE", ""))
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Logger:      logger.WithPrefix("game"),
		Store:       highScoreStore(settings),
		Ship:        settings.Ship,
		Seed:        settings.Seed,
		Constrained: settings.Constrained,
	}
	if settings.Audio {
		player := audio.NewPlayer(logger.WithPrefix("audio"))
		if err := player.Init(); err == nil {
			defer player.Close()
			opts.Sounds = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	logger.SetOutput(logOut)

	runErr := loop.Run(ctx, os.Stdin, os.Stdout, opts)
	_ = term.Restore(fd, oldState)
	logger.SetOutput(os.Stderr)

	if runErr != nil {
		logger.Error("game error", "err", runErr)
		os.Exit(1)
	}
}

// highScoreStore keeps the high score on disk unless no file is configured.
func highScoreStore(s config.Settings) store.HighScoreStore {
	if s.HighScore == "" {
		return &store.Memory{}
	}
	return store.NewFileStore(s.HighScore)
}

// logOutput opens path for appending, or discards logs when path is empty.
func logOutput(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}
