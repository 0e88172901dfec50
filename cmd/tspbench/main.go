package main

import (
	"os"

	"github.com/lcrocha/tspbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
