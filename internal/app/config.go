package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/shhac/textviewer/internal/document"
	apperrors "github.com/shhac/textviewer/internal/errors"
)

// AppName names the config, state and log directories.
const AppName = "textviewer"

// Themes accepted by Config.Theme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and source locations in log records
	Debug bool `toml:"debug"`

	// Charset is the fixed text encoding used to read and write documents
	Charset string `toml:"charset"`

	// Theme is "system", "light" or "dark"
	Theme string `toml:"theme"`

	// ToastDuration is how long notifications stay on screen
	ToastDuration Duration `toml:"toast_duration"`

	// ConfigPath is the file the configuration was loaded from. Not stored.
	ConfigPath string `toml:"-"`
}

// Duration is a time.Duration stored as a string such as "2s" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		Charset:       document.DefaultCharset,
		Theme:         ThemeSystem,
		ToastDuration: Duration(2 * time.Second),
	}
}

// DefaultConfigPath returns <XDG_CONFIG_HOME>/textviewer/config.toml,
// creating the directory when needed.
func DefaultConfigPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(AppName, "config.toml"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// ResolveConfigPath returns path, or TEXTVIEWER_CONFIG when path is empty,
// or the default location when both are empty.
func ResolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv("TEXTVIEWER_CONFIG"); env != "" {
		return env, nil
	}
	return DefaultConfigPath()
}

// LoadConfig builds the configuration from defaults, the TOML file at path
// and the environment, in that order. See ResolveConfigPath for how an empty
// path is handled. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	path, err := ResolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.ConfigPath = path
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides values from TEXTVIEWER_DEBUG, TEXTVIEWER_CHARSET and
// TEXTVIEWER_THEME.
func (c *Config) applyEnv() {
	if debugStr := os.Getenv("TEXTVIEWER_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			c.Debug = debug
		}
	}

	if charset := os.Getenv("TEXTVIEWER_CHARSET"); charset != "" {
		c.Charset = charset
	}

	if theme := os.Getenv("TEXTVIEWER_THEME"); theme != "" {
		c.Theme = theme
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return apperrors.ConfigError{Key: "theme", Message: fmt.Sprintf("unknown theme %q", c.Theme)}
	}

	if c.ToastDuration <= 0 {
		return apperrors.ConfigError{Key: "toast_duration", Message: "must be positive"}
	}

	if _, err := document.NewCodec(c.Charset); err != nil {
		return apperrors.ConfigError{Key: "charset", Message: err.Error()}
	}
	return nil
}
