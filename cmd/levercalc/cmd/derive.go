package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/levercalc/risk"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive all position metrics once and print them",
	Long: `Compute every derived metric from the given inputs and print a table.

Inputs come from the effective configuration (defaults, config file,
LEVERCALC_* environment) and can be overridden per field with flags.

Examples:
  levercalc derive --actual-price 100 --leverage-price 10 \
    --price-high 50000 --price-low 49000 --initial-capital 10000 \
    --position-size 1
  levercalc derive --config levercalc.yaml --direction short --json`,
	RunE: runDerive,
}

var (
	deriveConfigPath     string
	deriveJSON           bool
	deriveActualPrice    float64
	deriveLeveragePrice  float64
	derivePriceHigh      float64
	derivePriceLow       float64
	deriveInitialCapital float64
	deriveTakeProfit     float64
	derivePositionSize   float64
	deriveLossesFactor   float64
	deriveDirection      string
)

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().StringVarP(&deriveConfigPath, "config", "c", "", "path to config file")
	deriveCmd.Flags().BoolVar(&deriveJSON, "json", false, "emit raw unrounded metrics as JSON")
	deriveCmd.Flags().Float64Var(&deriveActualPrice, "actual-price", 0, "actual traded price")
	deriveCmd.Flags().Float64Var(&deriveLeveragePrice, "leverage-price", 0, "leverage reference price")
	deriveCmd.Flags().Float64Var(&derivePriceHigh, "price-high", 0, "upper price of the planned range")
	deriveCmd.Flags().Float64Var(&derivePriceLow, "price-low", 0, "lower price of the planned range")
	deriveCmd.Flags().Float64Var(&deriveInitialCapital, "initial-capital", 0, "account capital")
	deriveCmd.Flags().Float64Var(&deriveTakeProfit, "take-profit", risk.DefaultTakeProfitPercent, "take profit percentage")
	deriveCmd.Flags().Float64Var(&derivePositionSize, "position-size", 0, "position size")
	deriveCmd.Flags().Float64Var(&deriveLossesFactor, "losses-factor", risk.DefaultLossesFactor, "worst-case loss multiplier")
	deriveCmd.Flags().StringVar(&deriveDirection, "direction", "", "trade direction (long or short)")
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(deriveConfigPath)
	if err != nil {
		return err
	}

	in, err := cfg.ToInputs()
	if err != nil {
		return err
	}

	// Flags the user actually set win over config and environment.
	fl := cmd.Flags()
	if fl.Changed("actual-price") {
		in.ActualPrice = deriveActualPrice
	}
	if fl.Changed("leverage-price") {
		in.LeveragePrice = deriveLeveragePrice
	}
	if fl.Changed("price-high") {
		in.PriceHigh = derivePriceHigh
	}
	if fl.Changed("price-low") {
		in.PriceLow = derivePriceLow
	}
	if fl.Changed("initial-capital") {
		in.InitialCapital = deriveInitialCapital
	}
	if fl.Changed("take-profit") {
		in.TakeProfitPercent = deriveTakeProfit
	}
	if fl.Changed("position-size") {
		in.PositionSize = derivePositionSize
	}
	if fl.Changed("losses-factor") {
		in.LossesFactor = deriveLossesFactor
	}
	if fl.Changed("direction") {
		d, err := risk.ParseDirection(deriveDirection)
		if err != nil {
			return err
		}
		in.Direction = d
	}

	res := risk.Calculate(in)

	if deriveJSON {
		data, err := resultJSON(res)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderDerivation(cmd.OutOrStdout(), in, res, cfg.Display.Fallback)
	return nil
}
