package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the levercalc CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("levercalc version %s\n", version)
		fmt.Println("A leverage and capital-requirement calculator for planned trades")
		fmt.Println("https://github.com/rustyeddy/levercalc")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
