package main

import "srtforge/internal/cli"

func main() {
	cli.Main()
}
