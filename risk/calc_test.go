package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_WorkedScenario(t *testing.T) {
	t.Parallel()

	in := Inputs{
		ActualPrice:       100,
		LeveragePrice:     10,
		PriceHigh:         50000,
		PriceLow:          49000,
		InitialCapital:    10000,
		TakeProfitPercent: 0.33,
		PositionSize:      1,
		LossesFactor:      2,
		Direction:         Long,
	}

	got := Calculate(in)

	assert.InDelta(t, 10.0, got.Leverage, 1e-9)
	assert.InDelta(t, 50000.0, got.NotionalValue, 1e-9)
	assert.InDelta(t, 5000.0, got.BasicCapital, 1e-9)
	assert.InDelta(t, 0.0033, got.ProfitFraction, 1e-12)
	assert.InDelta(t, 165.0, got.TakeProfitTarget, 1e-9)
	assert.InDelta(t, 50165.0, got.ExitLong, 1e-9)
	assert.InDelta(t, 48835.0, got.ExitShort, 1e-9)
	assert.InDelta(t, 1000.0, got.PriceMovedAgainst, 1e-9)
	assert.InDelta(t, 20.0, got.LossWithoutTax, 1e-9)
	assert.InDelta(t, 500000.0, got.LeveragedNotional, 1e-9)
	assert.InDelta(t, 165.0, got.WantedProfit, 1e-9)
	assert.InDelta(t, 40.0, got.TotalLosses, 1e-9)
	assert.InDelta(t, 5540.0, got.MinCapitalToAvoidLiquidation, 1e-9)
	assert.InDelta(t, 50.0, got.PercentCapitalUsed, 1e-9)
	assert.InDelta(t, 1.96, got.MaxQty98Percent, 1e-9)
}

func TestCalculate_AllZeroInputs(t *testing.T) {
	t.Parallel()

	in := Inputs{
		TakeProfitPercent: 0.33,
		Direction:         Long,
	}

	got := Calculate(in)

	// The profit fraction is the only metric that survives an all-zero
	// record; everything else must be exactly zero, never NaN or Inf.
	assert.InDelta(t, 0.0033, got.ProfitFraction, 1e-12)
	for _, f := range got.Fields() {
		require.False(t, math.IsNaN(f.Value), "%s is NaN", f.Name)
		require.False(t, math.IsInf(f.Value, 0), "%s is Inf", f.Name)
		if f.Name == "profit_fraction" {
			continue
		}
		assert.Zero(t, f.Value, f.Name)
	}
}

func TestCalculate_ZeroGuards(t *testing.T) {
	t.Parallel()

	base := Inputs{
		ActualPrice:       100,
		LeveragePrice:     10,
		PriceHigh:         50000,
		PriceLow:          49000,
		InitialCapital:    10000,
		TakeProfitPercent: 0.33,
		PositionSize:      1,
		LossesFactor:      2,
		Direction:         Long,
	}

	tests := []struct {
		name   string
		mutate func(*Inputs)
		check  func(*testing.T, Result)
	}{
		{
			name:   "zero_leverage_price",
			mutate: func(in *Inputs) { in.LeveragePrice = 0 },
			check: func(t *testing.T, r Result) {
				assert.Zero(t, r.Leverage)
				assert.Zero(t, r.BasicCapital)
			},
		},
		{
			name:   "zero_price_high",
			mutate: func(in *Inputs) { in.PriceHigh = 0 },
			check: func(t *testing.T, r Result) {
				assert.Zero(t, r.LossWithoutTax)
			},
		},
		{
			name:   "zero_initial_capital",
			mutate: func(in *Inputs) { in.InitialCapital = 0 },
			check: func(t *testing.T, r Result) {
				assert.Zero(t, r.PercentCapitalUsed)
				assert.Zero(t, r.MaxQty98Percent)
			},
		},
		{
			name:   "zero_losses_factor",
			mutate: func(in *Inputs) { in.LossesFactor = 0 },
			check: func(t *testing.T, r Result) {
				assert.Zero(t, r.TotalLosses)
				assert.Zero(t, r.MinCapitalToAvoidLiquidation)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := base
			tt.mutate(&in)
			tt.check(t, Calculate(in))
		})
	}
}

func TestCalculate_NegativeLossesFactorUsedAsIs(t *testing.T) {
	t.Parallel()

	in := Inputs{
		ActualPrice:       100,
		LeveragePrice:     10,
		PriceHigh:         50000,
		PriceLow:          49000,
		InitialCapital:    10000,
		TakeProfitPercent: 0.33,
		PositionSize:      1,
		LossesFactor:      -2,
		Direction:         Long,
	}

	got := Calculate(in)

	assert.InDelta(t, -40.0, got.TotalLosses, 1e-9)
	assert.InDelta(t, -40.0+5000.0+500.0, got.MinCapitalToAvoidLiquidation, 1e-9)
}

func TestCalculate_Pure(t *testing.T) {
	t.Parallel()

	in := Inputs{
		ActualPrice:       42.5,
		LeveragePrice:     8.5,
		PriceHigh:         31250,
		PriceLow:          30100,
		InitialCapital:    7500,
		TakeProfitPercent: 1.25,
		PositionSize:      0.4,
		LossesFactor:      3,
		Direction:         Short,
	}

	first := Calculate(in)
	second := Calculate(in)

	require.Equal(t, first, second)
}

func TestCalculate_DirectionSwitch(t *testing.T) {
	t.Parallel()

	in := Inputs{
		ActualPrice:       100,
		LeveragePrice:     10,
		PriceHigh:         50000,
		PriceLow:          49000,
		InitialCapital:    10000,
		TakeProfitPercent: 0.33,
		PositionSize:      1,
		LossesFactor:      2,
		Direction:         Long,
	}

	long := Calculate(in)
	in.Direction = Short
	short := Calculate(in)

	tp := 0.33 / 100
	assert.InDelta(t, tp*50000, long.TakeProfitTarget, 1e-9)
	assert.InDelta(t, tp*49000, short.TakeProfitTarget, 1e-9)
	assert.InDelta(t, 50000+short.TakeProfitTarget, short.ExitLong, 1e-9)
	assert.InDelta(t, 49000-short.TakeProfitTarget, short.ExitShort, 1e-9)

	// Everything not downstream of the take-profit target is side-agnostic.
	assert.Equal(t, long.ProfitFraction, short.ProfitFraction)
	assert.Equal(t, long.Leverage, short.Leverage)
	assert.Equal(t, long.NotionalValue, short.NotionalValue)
	assert.Equal(t, long.PriceMovedAgainst, short.PriceMovedAgainst)
	assert.Equal(t, long.BasicCapital, short.BasicCapital)
	assert.Equal(t, long.LossWithoutTax, short.LossWithoutTax)
	assert.Equal(t, long.LeveragedNotional, short.LeveragedNotional)
	assert.Equal(t, long.WantedProfit, short.WantedProfit)
	assert.Equal(t, long.TotalLosses, short.TotalLosses)
	assert.Equal(t, long.MinCapitalToAvoidLiquidation, short.MinCapitalToAvoidLiquidation)
	assert.Equal(t, long.PercentCapitalUsed, short.PercentCapitalUsed)
	assert.Equal(t, long.MaxQty98Percent, short.MaxQty98Percent)
}

func TestCalculate_NonFinitePropagation(t *testing.T) {
	t.Parallel()

	in := Inputs{
		ActualPrice:       math.Inf(1),
		LeveragePrice:     10,
		TakeProfitPercent: 0.33,
		Direction:         Long,
	}

	got := Calculate(in)

	// Guards only cover exact zero denominators; upstream garbage flows
	// through untouched.
	assert.True(t, math.IsInf(got.Leverage, 1))
}

func TestFields_CoversEveryMetric(t *testing.T) {
	t.Parallel()

	fields := Result{}.Fields()
	require.Len(t, fields, 15)

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		require.False(t, seen[f.Name], "duplicate field %s", f.Name)
		seen[f.Name] = true
	}
}
