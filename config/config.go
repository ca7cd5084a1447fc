package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/levercalc/format"
	"github.com/rustyeddy/levercalc/risk"
)

// Config carries the session-start input defaults and display settings.
type Config struct {
	Inputs  InputsConfig  `json:"inputs" yaml:"inputs"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// InputsConfig mirrors risk.Inputs with a free-form direction string so it
// can round-trip through YAML/JSON and the environment.
type InputsConfig struct {
	ActualPrice       float64 `json:"actual_price" yaml:"actual_price" envconfig:"ACTUAL_PRICE"`
	LeveragePrice     float64 `json:"leverage_price" yaml:"leverage_price" envconfig:"LEVERAGE_PRICE"`
	PriceHigh         float64 `json:"price_high" yaml:"price_high" envconfig:"PRICE_HIGH"`
	PriceLow          float64 `json:"price_low" yaml:"price_low" envconfig:"PRICE_LOW"`
	InitialCapital    float64 `json:"initial_capital" yaml:"initial_capital" envconfig:"INITIAL_CAPITAL"`
	TakeProfitPercent float64 `json:"take_profit_percent" yaml:"take_profit_percent" envconfig:"TAKE_PROFIT_PERCENT"`
	PositionSize      float64 `json:"position_size" yaml:"position_size" envconfig:"POSITION_SIZE"`
	LossesFactor      float64 `json:"losses_factor" yaml:"losses_factor" envconfig:"LOSSES_FACTOR"`
	Direction         string  `json:"direction" yaml:"direction" envconfig:"DIRECTION"`
}

// DisplayConfig controls how derived values are rendered.
type DisplayConfig struct {
	// Fallback is printed in place of NaN or infinite results.
	Fallback string `json:"fallback" yaml:"fallback" envconfig:"FALLBACK"`
}

// Default returns the configuration a fresh install runs with.
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			TakeProfitPercent: risk.DefaultTakeProfitPercent,
			LossesFactor:      risk.DefaultLossesFactor,
			Direction:         string(risk.Long),
		},
		Display: DisplayConfig{
			Fallback: format.Fallback,
		},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML for .yaml/.yml paths and
// indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// FromEnv overlays LEVERCALC_* environment variables onto c, e.g.
// LEVERCALC_INPUTS_TAKE_PROFIT_PERCENT or LEVERCALC_DISPLAY_FALLBACK.
// Variables that are not set leave the existing values alone.
func (c *Config) FromEnv() error {
	if err := envconfig.Process("levercalc", c); err != nil {
		return fmt.Errorf("process env config: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Inputs.TakeProfitPercent < 0 {
		return fmt.Errorf("inputs.take_profit_percent must not be negative")
	}
	if c.Inputs.Direction != "" {
		if _, err := risk.ParseDirection(c.Inputs.Direction); err != nil {
			return fmt.Errorf("inputs.direction: %w", err)
		}
	}
	if c.Display.Fallback == "" {
		return fmt.Errorf("display.fallback is required")
	}
	return nil
}

// ToInputs converts the configured defaults into an engine input record.
// An empty direction falls back to long.
func (c *Config) ToInputs() (risk.Inputs, error) {
	in := risk.Inputs{
		ActualPrice:       c.Inputs.ActualPrice,
		LeveragePrice:     c.Inputs.LeveragePrice,
		PriceHigh:         c.Inputs.PriceHigh,
		PriceLow:          c.Inputs.PriceLow,
		InitialCapital:    c.Inputs.InitialCapital,
		TakeProfitPercent: c.Inputs.TakeProfitPercent,
		PositionSize:      c.Inputs.PositionSize,
		LossesFactor:      c.Inputs.LossesFactor,
		Direction:         risk.Long,
	}
	if c.Inputs.Direction != "" {
		d, err := risk.ParseDirection(c.Inputs.Direction)
		if err != nil {
			return risk.Inputs{}, err
		}
		in.Direction = d
	}
	return in, nil
}
