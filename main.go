package main

import (
	"github.com/bundleswap/escrow-engine/cli"
)

func main() {
	cli.Execute()
}
