// Package config loads degrees settings from defaults, an optional YAML
// file and DEGREES_* environment variables, in increasing priority, and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/degrees/frontier"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Data source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config is the full application configuration.
type Config struct {
	Data    Data    `yaml:"data"`
	Search  Search  `yaml:"search"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Data selects where the dataset comes from.
type Data struct {
	// Source is "csv" (a directory of CSV files) or "sqlite" (a database file).
	Source string `yaml:"source" validate:"oneof=csv sqlite"`
	// Path is the CSV directory or the SQLite file.
	Path string `yaml:"path" validate:"required"`
	// StrictLinks rejects cast rows that reference unknown records.
	StrictLinks bool `yaml:"strict_links"`
}

// Search tunes the engine.
type Search struct {
	Discipline    string `yaml:"discipline" validate:"oneof=fifo lifo queue stack bfs dfs"`
	MaxExpansions int    `yaml:"max_expansions" validate:"gte=0"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Metrics toggles Prometheus collection.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration: CSV data in ./large,
// breadth-first search without limits, warn-level console logs.
func Default() *Config {
	return &Config{
		Data:   Data{Source: SourceCSV, Path: "large"},
		Search: Search{Discipline: "fifo"},
		Log:    Log{Level: "warn", Format: "console"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Discipline returns the parsed frontier discipline.
func (c *Config) Discipline() frontier.Discipline {
	d, err := frontier.ParseDiscipline(c.Search.Discipline)
	if err != nil {
		return frontier.FIFO
	}

	return d
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and returns ErrInvalid on failure.
func (c *Config) Validate() error {
	c.normalize()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

func (c *Config) normalize() {
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	c.Search.Discipline = strings.ToLower(strings.TrimSpace(c.Search.Discipline))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// applyEnv overrides fields from DEGREES_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"DEGREES_DATA_SOURCE":       &c.Data.Source,
		"DEGREES_DATA_PATH":         &c.Data.Path,
		"DEGREES_SEARCH_DISCIPLINE": &c.Search.Discipline,
		"DEGREES_LOG_LEVEL":         &c.Log.Level,
		"DEGREES_LOG_FORMAT":        &c.Log.Format,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"DEGREES_DATA_STRICT_LINKS": &c.Data.StrictLinks,
		"DEGREES_METRICS_ENABLED":   &c.Metrics.Enabled,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
			}
			*dst = b
		}
	}

	if v, ok := lookup("DEGREES_SEARCH_MAX_EXPANSIONS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DEGREES_SEARCH_MAX_EXPANSIONS=%q: %v", ErrInvalid, v, err)
		}
		c.Search.MaxExpansions = n
	}

	return nil
}
