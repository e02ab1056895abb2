// Package config holds the settings of an attendance run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputTable   = "table"
	OutputJSON    = "json"
	OutputCSV     = "csv"
	OutputSummary = "summary"
)

// Result orderings.
const (
	SortRoster     = "roster"
	SortName       = "name"
	SortPercentage = "percentage"
)

// Defaults.
const (
	DefaultOutput   = OutputTable
	DefaultTimezone = "Local"
	DefaultSort     = SortRoster
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the run configuration. File values are overridden by flags.
type Config struct {
	Teacher         string `yaml:"teacher"`
	RosterFile      string `yaml:"roster"`
	AttendanceFile  string `yaml:"attendance"`
	OutputFormat    string `yaml:"output"`
	Timezone        string `yaml:"timezone"`
	SortBy          string `yaml:"sort"`
	SkipWaitingRoom bool   `yaml:"skip_waiting_room"`
	LogFile         string `yaml:"log_file,omitempty"`
	Debug           bool   `yaml:"debug,omitempty"`
}

// Default returns a configuration with defaults and no inputs.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Timezone:     DefaultTimezone,
		SortBy:       DefaultSort,
	}
}

// Load reads a YAML configuration from path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.SortBy == "" {
		c.SortBy = DefaultSort
	}
}

// Validate checks required inputs and enumerations.
func (c *Config) Validate() error {
	c.applyDefaults()

	var problems []string
	if strings.TrimSpace(c.Teacher) == "" {
		problems = append(problems, "teacher name is required")
	}
	if c.RosterFile == "" {
		problems = append(problems, "roster file is required")
	}
	if c.AttendanceFile == "" {
		problems = append(problems, "attendance file is required")
	}
	switch c.OutputFormat {
	case OutputTable, OutputJSON, OutputCSV, OutputSummary:
	default:
		problems = append(problems, fmt.Sprintf("unknown output format %q (table, json, csv, summary)", c.OutputFormat))
	}
	switch c.SortBy {
	case SortRoster, SortName, SortPercentage:
	default:
		problems = append(problems, fmt.Sprintf("unknown sort %q (roster, name, percentage)", c.SortBy))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}
