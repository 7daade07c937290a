package main

import "github.com/StarkeWang/test-time-calc/internal/cli"

func main() {
	cli.Execute()
}
