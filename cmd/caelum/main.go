package main

import (
	"os"

	"github.com/caelum-dev/caelum/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
