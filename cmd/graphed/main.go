package main

import (
	"fmt"
	"os"

	"github.com/psidex/graphed/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Sprintf("graphed: %v", err))
		os.Exit(1)
	}
}
