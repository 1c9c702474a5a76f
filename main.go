package main

import (
	"os"

	"github.com/concrete-theme/concrete/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
