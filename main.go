package main

import (
	"os"

	"github.com/hiapplyco/docintel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
