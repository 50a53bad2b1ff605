// slicecube - CLI for rotating slices of N×N×N cubes.
package main

import (
	"github.com/SeamusWaldron/slicecube/internal/cli"
)

func main() {
	cli.Execute()
}
