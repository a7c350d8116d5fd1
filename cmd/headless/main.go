package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/meghashyamc/derby2d/config"
	"github.com/meghashyamc/derby2d/logger"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/sim"
	"github.com/meghashyamc/derby2d/track"
)

type runStats struct {
	frames      int
	transitions int
	timeIn      map[pack.Warning]time.Duration
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	opts := cfg.Options()

	var frames int
	var every int
	var quiet bool
	flag.IntVar(&frames, "frames", cfg.GetHeadlessFrames(), "frames to simulate")
	flag.IntVar(&every, "every", 0, "print a frame report every n frames (0 prints only the last)")
	flag.IntVar(&opts.TeamSize, "team", opts.TeamSize, "blockers per team, pivot included")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "lineup seed")
	flag.BoolVar(&quiet, "quiet", false, "only log errors")
	flag.Parse()

	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		os.Exit(2)
	}

	level := cfg.GetLogLevel()
	if quiet {
		level = "error"
	}
	log := logger.NewWithOptions(logger.Options{Level: level, Format: cfg.GetLogFormat()})

	session, err := sim.Start(track.New(), opts, log)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Jam Report ===\n")
	fmt.Printf("session=%s frames=%d team=%d seed=%d collision=%s\n\n",
		session.ID, frames, opts.TeamSize, opts.Seed, opts.Tuning.Response)

	stats := runStats{timeIn: make(map[pack.Warning]time.Duration)}
	last := session.Frame()
	for i := 1; i <= frames; i++ {
		f := session.Step()
		stats.frames++
		stats.timeIn[f.Warning] += f.Now - last.Now
		if f.Warning != last.Warning {
			stats.transitions++
		}
		if every > 0 && i%every == 0 && i != frames {
			fmt.Println(f.Report())
		}
		last = f
	}

	fmt.Println(last.Report())
	printStats(stats)
}

func printStats(stats runStats) {
	fmt.Printf("warning changes: %d over %d frames\n", stats.transitions, stats.frames)
	for w := pack.WarningNoPack; w <= pack.WarningPackIsHere; w++ {
		if d, ok := stats.timeIn[w]; ok {
			fmt.Printf("  %-14s %6.2fs\n", w, d.Seconds())
		}
	}
}
