package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/derby2d/config"
	"github.com/meghashyamc/derby2d/game"
	"github.com/meghashyamc/derby2d/logger"
	"github.com/meghashyamc/derby2d/sim"
	"github.com/meghashyamc/derby2d/track"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.NewWithOptions(logger.Options{Level: cfg.GetLogLevel(), Format: cfg.GetLogFormat()})

	session, err := sim.Start(track.New(), cfg.Options(), log)
	if err != nil {
		log.Error("failed to start jam", "err", err)
		os.Exit(1)
	}
	g := game.NewGame(cfg, session, log)
	if err := g.Run(); err != nil {
		slog.Error("error running viewer", "err", err)
		os.Exit(1)
	}
}
