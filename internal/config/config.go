package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const (
	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium

	// Key sets
	KeysArrows  = "arrows"
	KeysWASD    = "wasd"
	KeysVim     = "vim"
	KeysDefault = KeysArrows

	DefaultTick = 100 * time.Millisecond
)

// Config holds the runtime settings of one game process.
type Config struct {
	Tick       time.Duration `yaml:"tick" env:"SNAKE_TICK" env-default:"100ms"`
	SpriteSize string        `yaml:"sprite-size" env:"SNAKE_SPRITE_SIZE" env-default:"medium"`
	Keys       string        `yaml:"keys" env:"SNAKE_KEYS" env-default:"arrows"`
	Seed       int64         `yaml:"seed" env:"SNAKE_SEED" env-default:"0"`
	Log        Log           `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level" env:"SNAKE_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file" env:"SNAKE_LOG_FILE"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Tick:       DefaultTick,
		SpriteSize: SpriteDefault,
		Keys:       KeysDefault,
		Log:        Log{Level: "info"},
	}
}

// Load reads the YAML file at path and applies environment overrides.
// A missing file is not an error: defaults and environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, errors.Wrapf(err, "config: read %s", path)
			}
			return cfg, cfg.Validate()
		case !errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config: stat %s", path)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "config: read environment")
	}
	return cfg, cfg.Validate()
}

// Validate normalizes enum values and rejects unknown ones.
func (c *Config) Validate() error {
	c.SpriteSize = strings.ToLower(c.SpriteSize)
	switch c.SpriteSize {
	case SpriteSmall, SpriteMedium, SpriteLarge:
	default:
		return errors.Errorf("invalid sprite size: %s. Use 'small', 'medium' or 'large'", c.SpriteSize)
	}

	c.Keys = strings.ToLower(c.Keys)
	switch c.Keys {
	case KeysArrows, KeysWASD, KeysVim:
	default:
		return errors.Errorf("invalid key set: %s. Use 'arrows', 'wasd' or 'vim'", c.Keys)
	}

	if c.Tick <= 0 {
		return errors.Errorf("invalid tick interval: %s", c.Tick)
	}
	return nil
}

// Usage returns the environment variables understood by Load.
func Usage() string {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return desc
}
