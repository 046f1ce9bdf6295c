package main

import (
	"os"

	"github.com/hasbyte1/go-containers/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
