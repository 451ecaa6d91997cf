package main

import (
	"os"

	"github.com/aireport/preflight/cmd/preflight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
