package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Settings are the values a settings file may set. Nil fields are left alone.
type Settings struct {
	Output        *string  `yaml:"output"`
	Pattern       *string  `yaml:"pattern"`
	Strict        *bool    `yaml:"strict"`
	Progress      *bool    `yaml:"progress"`
	PercentPlaces *int     `yaml:"percent_places"`
	Ignore        []string `yaml:"ignore"`
}

// ReadSettings reads a settings file. YAML files (.yaml, .yml) use the keys
// of Settings; any other file is read in dotenv format with REPORT_* keys.
// The process environment is never read or modified.
func ReadSettings(path string) (*Settings, error) {
	var (
		s   *Settings
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = readYAML(path)
	default:
		s, err = readDotenv(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return s, nil
}

func readYAML(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Settings{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return s, nil
}

func readDotenv(path string) (*Settings, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	s := &Settings{}
	for key, value := range values {
		switch key {
		case "REPORT_OUTPUT":
			output := value
			s.Output = &output
		case "REPORT_PATTERN":
			pattern := value
			s.Pattern = &pattern
		case "REPORT_STRICT":
			b, err := cast.ToBoolE(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			s.Strict = &b
		case "REPORT_PROGRESS":
			b, err := cast.ToBoolE(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			s.Progress = &b
		case "REPORT_PERCENT_PLACES":
			n, err := cast.ToIntE(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			s.PercentPlaces = &n
		case "REPORT_IGNORE":
			for _, dir := range strings.Split(value, ",") {
				if dir = strings.TrimSpace(dir); dir != "" {
					s.Ignore = append(s.Ignore, dir)
				}
			}
		default:
			return nil, fmt.Errorf("unknown setting %q", key)
		}
	}
	return s, nil
}

// Apply copies every value present in the settings onto cfg
func (s *Settings) Apply(cfg *Config) {
	if s.Output != nil {
		cfg.OutputPath = *s.Output
	}
	if s.Pattern != nil {
		cfg.Pattern = *s.Pattern
	}
	if s.Strict != nil {
		cfg.Strict = *s.Strict
	}
	if s.Progress != nil {
		cfg.Progress = *s.Progress
	}
	if s.PercentPlaces != nil {
		cfg.PercentPlaces = *s.PercentPlaces
	}
	if s.Ignore != nil {
		cfg.PathsToIgnore = append([]string(nil), s.Ignore...)
	}
}
