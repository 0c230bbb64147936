// glyphgen generates Flutter IconData constants from an icon-font
// glyph manifest. Single binary, one-shot: parse, transform, render,
// write.
package main

import (
	"os"

	"github.com/corey/glyphgen/cmd/glyphgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
