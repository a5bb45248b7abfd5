// kociemba is a CLI for solving a 3x3x3 Rubik's cube with Kociemba's
// two-phase algorithm.
package main

import (
	"github.com/kociemba/twophase/internal/cli"
)

func main() {
	cli.Execute()
}
