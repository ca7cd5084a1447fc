package risk

import (
	"fmt"
	"strings"
)

// Direction is the side of the planned trade.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// Session-start defaults. Every price and capital field starts at zero;
// the take-profit percentage and loss multiplier carry working values so a
// fresh session produces something usable after the first price edit.
const (
	DefaultTakeProfitPercent = 0.33
	DefaultLossesFactor      = 2.0
)

// ParseDirection maps user text onto a Direction. Unrecognized values are
// rejected outright rather than silently treated as one of the sides.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return "", fmt.Errorf("unknown direction %q (want long or short)", s)
}

// Inputs is the full set of user-editable trading parameters. Fields are
// always overwritten wholesale; there is no partial update of a record.
type Inputs struct {
	ActualPrice       float64   `json:"actual_price" yaml:"actual_price"`
	LeveragePrice     float64   `json:"leverage_price" yaml:"leverage_price"`
	PriceHigh         float64   `json:"price_high" yaml:"price_high"`
	PriceLow          float64   `json:"price_low" yaml:"price_low"`
	InitialCapital    float64   `json:"initial_capital" yaml:"initial_capital"`
	TakeProfitPercent float64   `json:"take_profit_percent" yaml:"take_profit_percent"`
	PositionSize      float64   `json:"position_size" yaml:"position_size"`
	LossesFactor      float64   `json:"losses_factor" yaml:"losses_factor"`
	Direction         Direction `json:"direction" yaml:"direction"`
}

// Defaults returns the Inputs a new session starts from.
func Defaults() Inputs {
	return Inputs{
		TakeProfitPercent: DefaultTakeProfitPercent,
		LossesFactor:      DefaultLossesFactor,
		Direction:         Long,
	}
}
