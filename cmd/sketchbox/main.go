package main

import (
	"fmt"
	"os"

	"sketchbox/internal/cli"
	_ "sketchbox/internal/sketches/glyphs"
	_ "sketchbox/internal/sketches/martens"
	_ "sketchbox/internal/sketches/pulse"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
