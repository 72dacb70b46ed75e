// Hueforge - a perceptual colour palette engine
//
// Hueforge generates colour palettes in perceptually uniform OKLCH
// space and extracts dominant-colour palettes from images.
package main

import (
	"github.com/jmylchreest/hueforge/internal/cli"
)

func main() {
	cli.Execute()
}
