package main

import "github.com/aspect/anchor/internal/cli"

func main() {
	cli.Execute()
}
