package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config holds all configuration for a report run
type Config struct {
	// Inputs
	TemplatePath string
	ResultPaths  []string

	// Output settings
	OutputPath    string
	PercentPlaces int

	// Discovery settings
	Pattern       string
	PathsToIgnore []string

	// Behaviour
	Strict   bool
	Progress bool
	Verbose  bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile    string
	Output        string
	Pattern       string
	PercentPlaces int
	Strict        bool
	Progress      bool
	Verbose       bool

	// Changed holds the names of the flags given on the command line
	Changed map[string]bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputPath:    DefaultOutputPath,
		PercentPlaces: DefaultPercentPlaces,
		Pattern:       DefaultPattern,
		Flags:         Flags{PercentPlaces: DefaultPercentPlaces, Pattern: DefaultPattern},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds the configuration for a run: defaults, then the settings file
// named by the flags, then every flag set on the command line.
// args are the positional arguments: the template followed by result paths.
func Load(flags Flags, args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, errors.New("a template and at least one result document are required")
	}

	cfg := New()
	cfg.Flags = flags
	cfg.TemplatePath = args[0]
	cfg.ResultPaths = args[1:]

	if flags.ConfigFile != "" {
		settings, err := ReadSettings(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		settings.Apply(cfg)
	}

	cfg.applyFlags()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFlags() {
	f := c.Flags
	if f.Changed["output"] {
		c.OutputPath = f.Output
	}
	if f.Changed["pattern"] {
		c.Pattern = f.Pattern
	}
	if f.Changed["percent-places"] {
		c.PercentPlaces = f.PercentPlaces
	}
	if f.Changed["strict"] {
		c.Strict = f.Strict
	}
	if f.Changed["progress"] {
		c.Progress = f.Progress
	}
	if f.Changed["verbose"] {
		c.Verbose = f.Verbose
	}
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	if c.TemplatePath == "" {
		return errors.New("template path is empty")
	}
	if len(c.ResultPaths) == 0 {
		return errors.New("no result documents given")
	}
	if c.PercentPlaces < 0 || c.PercentPlaces > MaxPercentPlaces {
		return fmt.Errorf("percent places must be between 0 and %d, got %d", MaxPercentPlaces, c.PercentPlaces)
	}
	return nil
}

// GetOutputPath returns the absolute path of the report file, or "" when the
// report goes to standard output
func (c *Config) GetOutputPath() string {
	if c.OutputPath == "" || c.OutputPath == "-" {
		return ""
	}
	if abs, err := filepath.Abs(c.OutputPath); err == nil {
		return abs
	}
	return c.OutputPath
}
