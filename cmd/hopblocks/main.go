// SPDX-License-Identifier: MIT

// Command hopblocks builds lattice hopping structures from TOML configs.
package main

import "github.com/katalvlaran/hopblocks/internal/cli"

func main() {
	cli.Execute()
}
