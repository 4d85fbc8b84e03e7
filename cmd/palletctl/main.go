package main

import (
	"fmt"
	"os"

	"github.com/danmuck/palletctl/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "palletctl: %v\n", err)
		os.Exit(1)
	}
}
