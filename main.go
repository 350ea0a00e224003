package main

import (
	"os"

	"github.com/an-ivanov/nansat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
