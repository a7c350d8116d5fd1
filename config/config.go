package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/meghashyamc/derby2d/motion"
	"github.com/meghashyamc/derby2d/sim"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
	defaultWindowTitle  = "derby2d"
	defaultTeamSize     = 4
	defaultFrames       = 600
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("error reading .env file", "err", err.Error())
	}

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) getInt(envKey, yamlKey string, fallback int) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(yamlKey)
	}
	if value == 0 {
		value = fallback
	}
	return value
}

func (c *Config) getFloat(envKey, yamlKey string, fallback float64) float64 {
	value := c.config.GetFloat64(envKey)
	if value == 0 {
		value = c.config.GetFloat64(yamlKey)
	}
	if value == 0 {
		value = fallback
	}
	return value
}

func (c *Config) getString(envKey, yamlKey, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(yamlKey)
	}
	if len(value) == 0 {
		value = fallback
	}
	return value
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

func (c *Config) GetFrameRate() float64 {
	return c.getFloat("FRAME_RATE", "sim.framerate", motion.DefaultTuning().FrameRate)
}

// GetTeamSize is the number of blockers per team, pivot included.
func (c *Config) GetTeamSize() int {
	return c.getInt("TEAM_SIZE", "sim.teamsize", defaultTeamSize)
}

// GetSeed checks whether a key is set rather than non-zero, since 0 is a
// valid seed.
func (c *Config) GetSeed() int64 {
	for _, key := range []string{"SEED", "sim.seed"} {
		if c.config.IsSet(key) {
			return c.config.GetInt64(key)
		}
	}
	return 1
}

func (c *Config) GetCollisionResponse() string {
	return c.getString("COLLISION_RESPONSE", "sim.collision", motion.ResponsePositional.String())
}

func (c *Config) GetHeadlessFrames() int {
	return c.getInt("HEADLESS_FRAMES", "headless.frames", defaultFrames)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

func (c *Config) GetLogFormat() string {
	return c.getString("LOG_FORMAT", "log.format", defaultLogFormat)
}

// Tuning is the default movement tuning with the configured overrides applied.
func (c *Config) Tuning() motion.Tuning {
	tuning := motion.DefaultTuning()
	tuning.FrameRate = c.GetFrameRate()
	tuning.BlockerMaxSpeed = c.getFloat("BLOCKER_MAX_SPEED", "motion.blockermaxspeed", tuning.BlockerMaxSpeed)
	tuning.JammerMaxSpeed = c.getFloat("JAMMER_MAX_SPEED", "motion.jammermaxspeed", tuning.JammerMaxSpeed)
	tuning.Response = motion.ParseResponse(c.GetCollisionResponse())
	return tuning
}

func (c *Config) Options() sim.Options {
	return sim.Options{
		TeamSize: c.GetTeamSize(),
		Seed:     c.GetSeed(),
		Tuning:   c.Tuning(),
	}
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
