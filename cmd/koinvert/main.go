package main

import (
	"os"

	"github.com/koinvert-dev/koinvert/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
