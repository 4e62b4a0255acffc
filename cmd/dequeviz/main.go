// "dequeviz" replays deque operations and renders the resulting block structure.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/npillmayer/deque/cmd/dequeviz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("dequeviz failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
