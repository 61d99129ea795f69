package main

import (
	"fmt"
	"os"

	"github.com/backprop/server/internal/client/cli"
)

func main() {
	if err := cli.App().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
