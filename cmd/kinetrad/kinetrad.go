package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/kinetra/kinetra/internal/kinetrad"
)

func main() {
	if err := kinetrad.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
