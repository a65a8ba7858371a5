package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zappabad/trendtape/internal/cookie"
	feedservice "github.com/zappabad/trendtape/internal/feed/service"
	"github.com/zappabad/trendtape/internal/seed"
	"github.com/zappabad/trendtape/internal/ticker"
)

// Config holds all trendtape configuration.
type Config struct {
	Tape    TapeConfig    `yaml:"tape"`
	Feed    FeedConfig    `yaml:"feed"`
	Store   StoreConfig   `yaml:"store"`
	Seed    SeedConfig    `yaml:"seed"`
	Logging LoggingConfig `yaml:"logging"`
}

// TapeConfig configures the scrolling tape.
type TapeConfig struct {
	// Width of the tape in cells; 0 uses the terminal width.
	Width int `yaml:"width"`
	// Speed is how many cells the text moves per tick.
	Speed int `yaml:"speed"`
	// Interval between animation ticks.
	Interval time.Duration `yaml:"interval"`
	// PauseOnHover holds the text still while the pointer is over it.
	PauseOnHover bool `yaml:"pause_on_hover"`
	// Delimiter separates stories in the tape text.
	Delimiter string `yaml:"delimiter"`
	// Gap is how far past either edge the text travels before wrapping.
	Gap int `yaml:"gap"`
}

// FeedConfig configures where topics come from.
type FeedConfig struct {
	Capacity    int `yaml:"capacity"`
	EventBuffer int `yaml:"event_buffer"`
	// ContentFile, when set, is read at startup and watched for changes.
	ContentFile string `yaml:"content_file"`
	// Topics seed the feed when no content file is given.
	Topics []string `yaml:"topics"`
}

// StoreConfig configures the cookie jar.
type StoreConfig struct {
	Path       string `yaml:"path"`
	ExpiryDays int    `yaml:"expiry_days"`
}

// SeedConfig configures the seed field.
type SeedConfig struct {
	MaxLength int `yaml:"max_length"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	// File receives JSON log lines; empty disables logging.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	feedDefaults := feedservice.DefaultConfig()
	storeDefaults := cookie.DefaultConfig()

	return Config{
		Tape: TapeConfig{
			Speed:        1,
			Interval:     50 * time.Millisecond,
			PauseOnHover: true,
			Delimiter:    string(ticker.DefaultDelimiter),
			Gap:          2,
		},
		Feed: FeedConfig{
			Capacity:    feedDefaults.Capacity,
			EventBuffer: feedDefaults.EventBuffer,
			Topics: []string{
				"Solar panels hit record efficiency",
				"Mars rover finds ancient lake bed",
				"Electric cars outsell diesel in Europe",
				"New vaccine enters final trials",
				"Quantum computing startup raises funds",
			},
		},
		Store: StoreConfig{
			Path:       storeDefaults.Path,
			ExpiryDays: storeDefaults.ExpiryDays,
		},
		Seed: SeedConfig{
			MaxLength: seed.DefaultMaxLength,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TRENDTAPE_CONTENT_FILE"); v != "" {
		c.Feed.ContentFile = v
	}
	if v := os.Getenv("TRENDTAPE_STORE"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("TRENDTAPE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the components cannot default on their own.
func (c *Config) Validate() error {
	if c.Tape.Width < 0 {
		return fmt.Errorf("%w: tape.width must not be negative", ErrInvalid)
	}
	if c.Tape.Speed <= 0 {
		return fmt.Errorf("%w: tape.speed must be positive", ErrInvalid)
	}
	if c.Tape.Interval <= 0 {
		return fmt.Errorf("%w: tape.interval must be positive", ErrInvalid)
	}
	if c.Tape.Gap < 0 {
		return fmt.Errorf("%w: tape.gap must not be negative", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Tape.Delimiter) != 1 {
		return fmt.Errorf("%w: tape.delimiter must be one character, got %q", ErrInvalid, c.Tape.Delimiter)
	}
	if c.Seed.MaxLength <= 0 {
		return fmt.Errorf("%w: seed.max_length must be positive", ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// DelimiterRune returns the tape delimiter. Validate guarantees one rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Tape.Delimiter)
	return r
}

// FeedServiceConfig maps the feed section onto the feed service's config.
func (c *Config) FeedServiceConfig() feedservice.Config {
	cfg := feedservice.DefaultConfig()
	cfg.Capacity = c.Feed.Capacity
	cfg.EventBuffer = c.Feed.EventBuffer
	return cfg
}

// CookieConfig maps the store section onto the cookie store's config.
func (c *Config) CookieConfig() cookie.Config {
	return cookie.Config{Path: c.Store.Path, ExpiryDays: c.Store.ExpiryDays}
}
