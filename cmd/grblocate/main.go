// cmd/grblocate/main.go
package main

import (
	"fmt"
	"os"

	"github.com/grbtools/grblocate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// One bare line: build tools surface this text to the user verbatim.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
