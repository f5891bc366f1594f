package main

import "github.com/blackpdx/ggokka-ot/internal/cli"

func main() {
	cli.Execute()
}
