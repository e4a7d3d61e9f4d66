package main

import (
	"os"

	"github.com/keyquiz/keyquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
