package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "vtparse/config.yaml"
	defaultMaxCharCount  = 4096
	defaultWidth         = 80
	defaultHeight        = 24
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema for the vtparse demo
// harness. The parser core itself is configured entirely in-process
// (vtparse.NewParser); this schema only covers what the CLI needs to start
// one.
type Config struct {
	Version int `yaml:"version"`

	Parser Parser `yaml:"parser"`
	Screen Screen `yaml:"screen"`
	Trace  Trace  `yaml:"trace"`
	Debug  Debug  `yaml:"debug"`
}

// Parser configures the vtparse.Parser the harness constructs.
type Parser struct {
	MaxCharCount    int  `yaml:"max_char_count"`
	UnicodeFastPath bool `yaml:"unicode_fast_path"`
}

// Screen configures the reference EventListener's grid. Theme is validated
// and printed by `vtparse status`; rendering always uses the Mocha palette,
// whatever Theme is set to.
type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
}

// Trace configures the optional TraceListener decorator.
type Trace struct {
	Enabled   bool `yaml:"enabled"`
	LogEvents bool `yaml:"log_events"`
}

// Debug controls sanitized logging.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version: DefaultConfigVersion,
		Parser: Parser{
			MaxCharCount:    defaultMaxCharCount,
			UnicodeFastPath: true,
		},
		Screen: Screen{
			Width:  defaultWidth,
			Height: defaultHeight,
			Theme:  "mocha",
		},
		Trace: Trace{
			Enabled:   false,
			LogEvents: false,
		},
		Debug: Debug{
			Enabled: false,
		},
	}
}

// DefaultPath returns the default config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse parses YAML config content, applying defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads config from disk, applying defaults when missing. The boolean
// return indicates whether a config file was found.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			if err := cfg.Validate(); err != nil {
				return Config{}, false, err
			}
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Validate enforces the supported configuration schema.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if c.Parser.MaxCharCount <= 0 {
		errs = append(errs, "parser.max_char_count must be > 0")
	}
	if c.Screen.Width <= 0 {
		errs = append(errs, "screen.width must be > 0")
	}
	if c.Screen.Height <= 0 {
		errs = append(errs, "screen.height must be > 0")
	}
	if !validTheme(c.Screen.Theme) {
		errs = append(errs, "screen.theme must be one of: latte, frappe, macchiato, mocha")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func validTheme(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latte", "frappe", "macchiato", "mocha":
		return true
	default:
		return false
	}
}
