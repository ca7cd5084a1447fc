package risk

// Result holds every metric derived from one Inputs record. A Result is
// recomputed in full after every input change and replaced, never merged.
type Result struct {
	ProfitFraction               float64 `json:"profit_fraction"`
	TakeProfitTarget             float64 `json:"take_profit_target"`
	ExitLong                     float64 `json:"exit_long"`
	ExitShort                    float64 `json:"exit_short"`
	NotionalValue                float64 `json:"notional_value"`
	Leverage                     float64 `json:"leverage"`
	BasicCapital                 float64 `json:"basic_capital"`
	PriceMovedAgainst            float64 `json:"price_moved_against"`
	LossWithoutTax               float64 `json:"loss_without_tax"`
	LeveragedNotional            float64 `json:"leveraged_notional"`
	WantedProfit                 float64 `json:"wanted_profit"`
	TotalLosses                  float64 `json:"total_losses"`
	MinCapitalToAvoidLiquidation float64 `json:"min_capital_to_avoid_liquidation"`
	PercentCapitalUsed           float64 `json:"percent_capital_used"`
	MaxQty98Percent              float64 `json:"max_qty_98_percent"`
}

// Calculate derives every output metric from in. It is pure and total:
// division by an exact zero denominator yields 0 for the affected field,
// and a zero LossesFactor zeroes the loss projections it scales. Other
// non-finite values are allowed to flow through; rounding is a display
// concern and never happens here.
//
// Later formulas consume earlier results, so the tiers below must keep
// their relative order.
func Calculate(in Inputs) Result {
	tp := in.TakeProfitPercent / 100

	var r Result

	// tier 1: direct from inputs
	r.ProfitFraction = tp
	if in.LeveragePrice != 0 {
		r.Leverage = in.ActualPrice / in.LeveragePrice
	}
	r.NotionalValue = in.PriceHigh * in.PositionSize
	r.PriceMovedAgainst = in.PriceHigh - in.PriceLow

	// tier 2
	if in.Direction == Short {
		r.TakeProfitTarget = tp * in.PriceLow
	} else {
		r.TakeProfitTarget = tp * in.PriceHigh
	}
	if r.Leverage != 0 {
		r.BasicCapital = r.NotionalValue / r.Leverage
	}
	if in.PriceHigh != 0 {
		// Adverse excursion as a fraction of the range top, applied to the
		// moved amount on this position size.
		r.LossWithoutTax = (r.PriceMovedAgainst / in.PriceHigh) * r.PriceMovedAgainst * in.PositionSize
	}

	// tier 3
	r.ExitLong = in.PriceHigh + r.TakeProfitTarget
	r.ExitShort = in.PriceLow - r.TakeProfitTarget
	r.LeveragedNotional = r.Leverage * r.NotionalValue
	r.WantedProfit = tp * r.NotionalValue
	if in.LossesFactor != 0 {
		r.TotalLosses = r.LossWithoutTax * in.LossesFactor
	}

	// tier 4
	if in.LossesFactor != 0 {
		r.MinCapitalToAvoidLiquidation = r.TotalLosses + r.BasicCapital + 0.01*r.NotionalValue
	}
	if in.InitialCapital != 0 {
		r.PercentCapitalUsed = (1 - (in.InitialCapital-r.BasicCapital)/in.InitialCapital) * 100
	}

	// tier 5
	if r.PercentCapitalUsed != 0 {
		r.MaxQty98Percent = (98 / r.PercentCapitalUsed) * in.PositionSize
	}

	return r
}

// Field pairs a metric name with its value, for rendering and export.
type Field struct {
	Name  string
	Value float64
}

// Fields returns the metrics in dependency order under their canonical
// snake_case names (the same names the JSON tags use).
func (r Result) Fields() []Field {
	return []Field{
		{"profit_fraction", r.ProfitFraction},
		{"leverage", r.Leverage},
		{"notional_value", r.NotionalValue},
		{"price_moved_against", r.PriceMovedAgainst},
		{"take_profit_target", r.TakeProfitTarget},
		{"basic_capital", r.BasicCapital},
		{"loss_without_tax", r.LossWithoutTax},
		{"exit_long", r.ExitLong},
		{"exit_short", r.ExitShort},
		{"leveraged_notional", r.LeveragedNotional},
		{"wanted_profit", r.WantedProfit},
		{"total_losses", r.TotalLosses},
		{"min_capital_to_avoid_liquidation", r.MinCapitalToAvoidLiquidation},
		{"percent_capital_used", r.PercentCapitalUsed},
		{"max_qty_98_percent", r.MaxQty98Percent},
	}
}
