package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/levercalc/risk"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, risk.DefaultTakeProfitPercent, cfg.Inputs.TakeProfitPercent)
	assert.Equal(t, risk.DefaultLossesFactor, cfg.Inputs.LossesFactor)
	assert.Equal(t, "long", cfg.Inputs.Direction)
}

func TestSaveAndLoad_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "levercalc.yaml")

	cfg := Default()
	cfg.Inputs.PriceHigh = 50000
	cfg.Inputs.Direction = "short"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveAndLoad_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "levercalc.json")

	cfg := Default()
	cfg.Inputs.InitialCapital = 10000
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default_ok", func(c *Config) {}, false},
		{"empty_direction_ok", func(c *Config) { c.Inputs.Direction = "" }, false},
		{"bad_direction", func(c *Config) { c.Inputs.Direction = "sideways" }, true},
		{"negative_take_profit", func(c *Config) { c.Inputs.TakeProfitPercent = -1 }, true},
		{"empty_fallback", func(c *Config) { c.Display.Fallback = "" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestToInputs(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Inputs.ActualPrice = 100
	cfg.Inputs.LeveragePrice = 10
	cfg.Inputs.Direction = "Short"

	in, err := cfg.ToInputs()
	require.NoError(t, err)

	assert.Equal(t, 100.0, in.ActualPrice)
	assert.Equal(t, 10.0, in.LeveragePrice)
	assert.Equal(t, risk.Short, in.Direction)
}

func TestToInputs_EmptyDirectionDefaultsLong(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Inputs.Direction = ""

	in, err := cfg.ToInputs()
	require.NoError(t, err)
	assert.Equal(t, risk.Long, in.Direction)
}

func TestToInputs_BadDirection(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Inputs.Direction = "up"

	_, err := cfg.ToInputs()
	require.Error(t, err)
}

func TestFromEnv_Overlay(t *testing.T) {
	t.Setenv("LEVERCALC_INPUTS_PRICE_HIGH", "31250")
	t.Setenv("LEVERCALC_INPUTS_DIRECTION", "short")

	cfg := Default()
	require.NoError(t, cfg.FromEnv())

	assert.Equal(t, 31250.0, cfg.Inputs.PriceHigh)
	assert.Equal(t, "short", cfg.Inputs.Direction)
	// Untouched values survive the overlay.
	assert.Equal(t, risk.DefaultLossesFactor, cfg.Inputs.LossesFactor)
}
