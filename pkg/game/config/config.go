// Package config loads arrowboard settings.
// Later sources override earlier ones: defaults, TOML file, .env file and
// environment, command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"arrowboard/pkg/engine/input"
	"arrowboard/pkg/game/generator"
	"arrowboard/pkg/game/state"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

const envPrefix = "ARROWBOARD_"

// Duration is a time.Duration written as a string ("2s", "500ms") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the application's configuration values.
type Config struct {
	Size     int      `toml:"size"`     // Board size for the first build
	Interval Duration `toml:"interval"` // Time between two advances
	Renderer string   `toml:"renderer"` // "ebiten" or "tui"
	Locale   string   `toml:"locale"`   // Locale directory under locales/
	Locales  string   `toml:"locales"`  // Path of the locales directory
	Seed     int64    `toml:"seed"`     // Board seed, 0 picks one from the clock
	Layout   string   `toml:"layout"`   // Fixed arrows (U/R/D/L per cell); overrides Seed
	LogFile  string   `toml:"log_file"` // Where the TUI writes its log

	// Extra key codes per action name, e.g. play = ["enter"]
	Keys map[string][]string `toml:"keys"`

	// Files the values were read from; not settable from TOML
	ConfigFile string `toml:"-"`
	EnvFile    string `toml:"-"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Size:     state.DefaultSize,
		Interval: Duration{2 * time.Second},
		Renderer: RendererEbiten,
		Locale:   "en_GB",
		Locales:  "locales",
		LogFile:  "arrowboard.log",
		EnvFile:  ".env",
	}
}

// Load builds the configuration from all sources. args are the command-line
// arguments without the program name.
func Load(args []string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("arrowboard", flag.ContinueOnError)
	flags := bindFlags(fset, &cfg)
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.LoadFile(*flags.config); err != nil {
		return cfg, err
	}
	if err := cfg.LoadEnv(*flags.env); err != nil {
		return cfg, err
	}

	// Only flags given on the command line win over file and environment
	var err error
	fset.Visit(func(f *flag.Flag) {
		if err == nil {
			err = flags.apply(f.Name, &cfg)
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

type flagValues struct {
	config, env, renderer, locale, layout *string
	size                                  *int
	interval                              *time.Duration
	seed                                  *int64
}

func bindFlags(fset *flag.FlagSet, defaults *Config) *flagValues {
	return &flagValues{
		config:   fset.String("config", "", "TOML config file"),
		env:      fset.String("env", defaults.EnvFile, "dotenv file with ARROWBOARD_* overrides"),
		size:     fset.Int("size", defaults.Size, fmt.Sprintf("board size (%d-%d)", state.MinSize, state.MaxSize)),
		interval: fset.Duration("interval", defaults.Interval.Duration, "time between two advances"),
		renderer: fset.String("renderer", defaults.Renderer, "renderer to use: ebiten or tui"),
		locale:   fset.String("locale", defaults.Locale, "message locale"),
		seed:     fset.Int64("seed", 0, "board seed (0 picks one from the clock)"),
		layout:   fset.String("layout", "", "fixed arrows, one of U/R/D/L per cell"),
	}
}

func (v *flagValues) apply(name string, cfg *Config) error {
	switch name {
	case "config":
		cfg.ConfigFile = *v.config
	case "env":
		cfg.EnvFile = *v.env
	case "size":
		cfg.Size = *v.size
	case "interval":
		cfg.Interval = Duration{*v.interval}
	case "renderer":
		cfg.Renderer = *v.renderer
	case "locale":
		cfg.Locale = *v.locale
	case "seed":
		cfg.Seed = *v.seed
	case "layout":
		cfg.Layout = *v.layout
	default:
		return fmt.Errorf("unhandled flag -%s", name)
	}
	return nil
}

// LoadFile reads TOML settings from path. An empty path does nothing.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

// LoadEnv loads path into the environment (if it exists) and applies any
// ARROWBOARD_* variables. Variables already set in the environment are not
// overwritten by the file.
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", path, err)
			}
			log.Printf("No env file at %s", path)
		} else {
			c.EnvFile = path
		}
	}

	if v, ok := lookupEnv("SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSIZE must be an integer: %w", envPrefix, err)
		}
		c.Size = n
	}
	if v, ok := lookupEnv("INTERVAL"); ok {
		if err := c.Interval.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sINTERVAL: %w", envPrefix, err)
		}
	}
	if v, ok := lookupEnv("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED must be an integer: %w", envPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookupEnv("RENDERER"); ok {
		c.Renderer = v
	}
	if v, ok := lookupEnv("LOCALE"); ok {
		c.Locale = v
	}
	if v, ok := lookupEnv("LAYOUT"); ok {
		c.Layout = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(envPrefix + key)
}

// Validate checks the values are usable
func (c *Config) Validate() error {
	if c.Size < state.MinSize || c.Size > state.MaxSize {
		return fmt.Errorf("size %d not in [%d, %d]", c.Size, state.MinSize, state.MaxSize)
	}
	if c.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	for name := range c.Keys {
		if _, err := input.ParseAction(name); err != nil {
			return fmt.Errorf("keys: %w", err)
		}
	}
	if c.Layout != "" {
		if _, err := c.fixedGenerator(); err != nil {
			return err
		}
	}
	return nil
}

// Generator returns the board generator the settings ask for
func (c *Config) Generator() (generator.GridGenerator, error) {
	if c.Layout != "" {
		return c.fixedGenerator()
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Board seed: %d", seed)
	return generator.NewArrowGenerator(seed), nil
}

func (c *Config) fixedGenerator() (generator.GridGenerator, error) {
	dirs, err := generator.ParseArrows(c.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if len(dirs) != c.Size*c.Size {
		return nil, fmt.Errorf("layout has %d arrows, a %dx%d board needs %d", len(dirs), c.Size, c.Size, c.Size*c.Size)
	}
	return &generator.FixedGenerator{Directions: dirs}, nil
}

// ApplyKeys adds the configured key codes to the input bindings
func (c *Config) ApplyKeys() error {
	for name, codes := range c.Keys {
		action, err := input.ParseAction(name)
		if err != nil {
			return err
		}
		for _, code := range codes {
			if err := input.AddBinding(action, code); err != nil {
				return err
			}
		}
	}
	return nil
}
