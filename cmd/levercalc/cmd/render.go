package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/rustyeddy/levercalc/format"
	"github.com/rustyeddy/levercalc/risk"
)

// Metrics rendered with a percent suffix. Which fields are percentages is
// a display decision; the engine only ever sees plain numbers.
var percentFields = map[string]bool{
	"percent_capital_used": true,
}

// renderDerivation prints the current inputs and every derived metric as a
// fixed two-decimal table. Non-finite values render as fallback.
func renderDerivation(w io.Writer, in risk.Inputs, r risk.Result, fallback string) {
	fmt.Fprintln(w, "Inputs")
	fmt.Fprintf(w, "  %-34s %14s\n", "actual_price", format.FixedOr(in.ActualPrice, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "leverage_price", format.FixedOr(in.LeveragePrice, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "price_high", format.FixedOr(in.PriceHigh, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "price_low", format.FixedOr(in.PriceLow, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "initial_capital", format.FixedOr(in.InitialCapital, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "take_profit_percent", format.FixedOr(in.TakeProfitPercent, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "position_size", format.FixedOr(in.PositionSize, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "losses_factor", format.FixedOr(in.LossesFactor, fallback))
	fmt.Fprintf(w, "  %-34s %14s\n", "direction", string(in.Direction))

	fmt.Fprintln(w, "Derived")
	for _, f := range r.Fields() {
		v := format.FixedOr(f.Value, fallback)
		if percentFields[f.Name] && v != fallback {
			v += "%"
		}
		fmt.Fprintf(w, "  %-34s %14s\n", f.Name, v)
	}
}

// resultJSON marshals the raw, unrounded metrics. NaN and Inf have no JSON
// representation, so those fields serialize as null.
func resultJSON(r risk.Result) ([]byte, error) {
	m := make(map[string]any, 15)
	for _, f := range r.Fields() {
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			m[f.Name] = nil
			continue
		}
		m[f.Name] = f.Value
	}
	return json.MarshalIndent(m, "", "  ")
}
