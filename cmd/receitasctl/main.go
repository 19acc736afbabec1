// Command receitasctl manages the recipe corpus from the command line.
package main

import (
	"os"

	"github.com/windoze95/receitas-api/internal/logger"
)

func main() {
	logger.Init(false)
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
