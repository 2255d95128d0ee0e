package main

import (
	"os"

	"github.com/sebamiro/luxrpc/cmd/luxrpc/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
