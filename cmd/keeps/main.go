package main

import (
	"fmt"
	"os"

	"github.com/noanitzan/my-keeps/internal/cli"
)

func main() {
	// Root flags are parsed by the command tree; hand over everything.
	code := cli.Run(os.Args[1:], cli.Options{})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
