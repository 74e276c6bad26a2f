package main

import (
	"os"

	"github.com/hdlbench/hdlbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
