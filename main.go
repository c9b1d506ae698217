package main

import (
	"os"

	"github.com/abhisek/limitz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
