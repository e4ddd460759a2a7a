package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/starfall/internal/audio"
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/gfx"
	"github.com/tomz197/starfall/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "desktop"})

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	logger.SetLevel(settings.Level())

	opts := gfx.Options{
		Logger:      logger,
		Store:       &store.Memory{},
		Ship:        settings.Ship,
		Seed:        settings.Seed,
		Constrained: settings.Constrained,
	}
	if settings.HighScore != "" {
		opts.Store = store.NewFileStore(settings.HighScore)
	}
	if settings.Audio {
		player := audio.NewPlayer(logger.WithPrefix("audio"))
		if err := player.Init(); err == nil {
			defer player.Close()
			opts.Sounds = player
		}
	}

	if err := gfx.Run(opts); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
