package main

import (
	"os"

	"github.com/go-drift/stylekit/cmd/stylekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
