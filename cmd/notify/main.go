package main

import "github.com/davidbz/spendwatch/internal/cli"

func main() {
	cli.Execute()
}
