package main

import "modfetch/internal/cli"

func main() {
	cli.Execute()
}
