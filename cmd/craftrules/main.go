package main

import "github.com/andrescamacho/craftrules-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
