package main

import (
	"os"

	"github.com/SumitR-washimkar/hackthon2/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
