package config

import (
	// stdlib
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// internal
	"github.com/Robogera/tseries/pkg/enums"
	"github.com/Robogera/tseries/pkg/seq"

	// external
	"github.com/pelletier/go-toml/v2"
)

var (
	ERR_INVALID = errors.New("Invalid config")
)

// Config file structure

type ConfigFile struct {
	Logging LoggingConfig  `toml:"logging"`
	Series  []SeriesConfig `toml:"series"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type SeriesConfig struct {
	Name   string    `toml:"name"`
	Times  []float64 `toml:"times"`
	Values []float64 `toml:"values,omitempty"`
	// explicit query times, take priority over Grid
	Query  []float64   `toml:"query,omitempty"`
	Grid   *GridConfig `toml:"grid,omitempty"`
	Method string      `toml:"method,omitempty"`
	// moving average window, 0 disables smoothing
	Smooth uint `toml:"smooth,omitempty"`
}

// Half-open query grid [From, To) with step Step
type GridConfig struct {
	From float64 `toml:"from"`
	To   float64 `toml:"to"`
	Step float64 `toml:"step"`
}

func Default() *ConfigFile {
	return &ConfigFile{
		Logging: LoggingConfig{Level: "info"},
		Series: []SeriesConfig{
			{
				Name:   "ramp",
				Times:  []float64{0, 5, 10},
				Values: []float64{1, 2, 3},
				Query:  []float64{-100, 1, 2.5, 7.5, 100},
				Method: "linear",
			},
			{
				Name:   "wave",
				Times:  []float64{0, 1, 2, 3, 4, 5, 6},
				Values: []float64{0, 0.84, 0.91, 0.14, -0.76, -0.96, -0.28},
				Grid:   &GridConfig{From: 0, To: 6, Step: 0.5},
				Method: "akima",
				Smooth: 3,
			},
		},
	}
}

func Unmarshal(file_path string) (*ConfigFile, error) {
	config_file := new(ConfigFile)
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil,
			fmt.Errorf("Unable to read %s error: %w", file_path, err)
	}
	err = toml.Unmarshal(data, config_file)
	if err != nil {
		return nil,
			fmt.Errorf("Unable to unmarshal %s error: %w", file_path, err)
	}
	return config_file, nil
}

// Writes the default config to file_path, creating
// parent directories as needed
func CreateDefault(file_path string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("Unable to marshal default config error: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file_path), 0o755); err != nil {
		return fmt.Errorf("Unable to create %s error: %w", filepath.Dir(file_path), err)
	}
	if err := os.WriteFile(file_path, data, 0o644); err != nil {
		return fmt.Errorf("Unable to write %s error: %w", file_path, err)
	}
	return nil
}

func (c *ConfigFile) Validate() error {
	if _, ok := enums.ParseLoggingLevel(c.Logging.Level); !ok {
		return fmt.Errorf("Logging level %q: %w", c.Logging.Level, ERR_INVALID)
	}
	names := make(map[string]struct{}, len(c.Series))
	for i, s := range c.Series {
		if s.Name == "" {
			return fmt.Errorf("Series #%d has no name: %w", i, ERR_INVALID)
		}
		if _, exists := names[s.Name]; exists {
			return fmt.Errorf("Series %q is defined twice: %w", s.Name, ERR_INVALID)
		}
		names[s.Name] = struct{}{}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("Series %q: %w", s.Name, err)
		}
	}
	return nil
}

func (s *SeriesConfig) Validate() error {
	if s.Values != nil && len(s.Values) != len(s.Times) {
		return fmt.Errorf("%d times and %d values: %w", len(s.Times), len(s.Values), ERR_INVALID)
	}
	if _, ok := enums.ParseMethod(s.Method); !ok {
		return fmt.Errorf("Method %q: %w", s.Method, ERR_INVALID)
	}
	if len(s.Query) == 0 && s.Grid != nil {
		if !(s.Grid.Step > 0) {
			return fmt.Errorf("Grid step %v: %w", s.Grid.Step, ERR_INVALID)
		}
		if n := seq.Len(s.Grid.From, s.Grid.To, s.Grid.Step); n > seq.MaxLen {
			return fmt.Errorf("Grid of %v points, at most %d allowed: %w", n, seq.MaxLen, ERR_INVALID)
		}
	}
	return nil
}

// Query times: the explicit list if present, the grid otherwise
func (s *SeriesConfig) QueryTimes() []float64 {
	if len(s.Query) > 0 || s.Grid == nil {
		return s.Query
	}
	return seq.Seq(s.Grid.From, s.Grid.To, s.Grid.Step)
}
