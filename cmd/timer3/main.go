package main

import (
	"os"

	"github.com/gilrrei/timer3/cmd/timer3/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
