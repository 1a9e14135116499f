package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeComputer = "computer"
	ModeHuman    = "human"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel      string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode          string    `yaml:"mode" env:"TTT_MODE" env-default:"computer" validate:"oneof=computer human"`
	HumanMark     string    `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"x" validate:"oneof=x o"`
	// booleans default to false, cleanenv cannot tell an explicit false from a missing value
	ComputerFirst bool      `yaml:"computer-first" env:"TTT_COMPUTER_FIRST"`
	NoColor       bool      `yaml:"no-color" env:"TTT_NO_COLOR"`
	Symbols       Symbols   `yaml:"symbols"`
	Arena         Arena     `yaml:"arena"`
	Telemetry     Telemetry `yaml:"telemetry"`
}

// Presentation of the three cell states, consumed only by the renderer
type Symbols struct {
	Empty  string `yaml:"empty" env:"TTT_SYMBOL_EMPTY" env-default:"_" validate:"required,nefield=Cross,nefield=Circle"`
	Cross  string `yaml:"cross" env:"TTT_SYMBOL_CROSS" env-default:"x" validate:"required"`
	Circle string `yaml:"circle" env:"TTT_SYMBOL_CIRCLE" env-default:"o" validate:"required,nefield=Cross"`
}

type Arena struct {
	Games    uint   `yaml:"games" env:"TTT_ARENA_GAMES" env-default:"100" validate:"min=1"`
	Threads  uint   `yaml:"threads" env:"TTT_ARENA_THREADS" env-default:"4" validate:"min=1,max=256"`
	Opponent string `yaml:"opponent" env:"TTT_ARENA_OPPONENT" env-default:"random" validate:"oneof=minimax random"`
}

type Telemetry struct {
	Enabled bool `yaml:"enabled" env:"TTT_TELEMETRY"`
	// file receiving spans and metrics, stderr when empty
	Output string `yaml:"output" env:"TTT_TELEMETRY_OUTPUT"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the yaml file at 'path' (if not empty) and the environment,
// environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
