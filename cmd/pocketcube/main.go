// pocketcube - CLI application for solving and analyzing 2x2x2 Pocket Cube scrambles.
package main

import (
	"github.com/SeamusWaldron/pocketcube/internal/cli"
)

func main() {
	cli.Execute()
}
