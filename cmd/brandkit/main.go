package main

import "github.com/intrale/brandkit/internal/cli"

func main() {
	cli.Execute()
}
