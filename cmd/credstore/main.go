package main

import (
	"os"

	"credstore/cmd/credstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
