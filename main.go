package main

import (
	"os"

	"github.com/endevo/legacyready/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
