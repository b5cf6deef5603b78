package main

import (
	"os"

	"github.com/loci-app/loci/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
