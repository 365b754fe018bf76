package main

import (
	"github.com/voidreamer/anvil/internal/cli"
)

func main() {
	cli.Execute()
}
