package main

import "github.com/zenrename/zenrename/internal/cli"

func main() {
	cli.Execute()
}
