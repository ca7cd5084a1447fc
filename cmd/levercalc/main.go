package main

import (
	"os"

	"github.com/rustyeddy/levercalc/cmd/levercalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
