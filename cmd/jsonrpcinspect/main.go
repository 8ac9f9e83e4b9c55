package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tulinowpavel/gojsonrpc2msg/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
