package config

import (
	"testing"

	"github.com/meghashyamc/derby2d/motion"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.GetTeamSize(); got != defaultTeamSize {
		t.Fatalf("team size: got=%d want=%d", got, defaultTeamSize)
	}
	if got := cfg.GetWindowTitle(); got != defaultWindowTitle {
		t.Fatalf("title: got=%q want=%q", got, defaultWindowTitle)
	}
	if got := cfg.Tuning(); got != motion.DefaultTuning() {
		t.Fatalf("tuning: got=%+v want defaults", got)
	}
}

func TestLocalConfigFile(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.GetLogFormat(); got != "console" {
		t.Fatalf("log format: got=%q want=console", got)
	}
	if got := cfg.GetHeadlessFrames(); got != 600 {
		t.Fatalf("frames: got=%d want=600", got)
	}
}

func TestEnvironmentWins(t *testing.T) {
	t.Setenv("TEAM_SIZE", "5")
	t.Setenv("COLLISION_RESPONSE", "elastic")
	t.Setenv("JAMMER_MAX_SPEED", "9.5")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.Options()
	if opts.TeamSize != 5 {
		t.Fatalf("team size: got=%d want=5", opts.TeamSize)
	}
	if opts.Tuning.Response != motion.ResponseElastic {
		t.Fatalf("response: got=%v want=elastic", opts.Tuning.Response)
	}
	if opts.Tuning.JammerMaxSpeed != 9.5 {
		t.Fatalf("jammer speed: got=%f want=9.5", opts.Tuning.JammerMaxSpeed)
	}
}

func TestZeroSeedIsKept(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.GetSeed(); got != 1 {
		t.Fatalf("default seed: got=%d want=1", got)
	}

	t.Setenv("SEED", "0")
	if got := cfg.GetSeed(); got != 0 {
		t.Fatalf("seed: got=%d want=0", got)
	}
}
