package main

import (
	"os"

	"github.com/humblebees/bankjournal/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
