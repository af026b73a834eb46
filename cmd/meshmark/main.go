package main

import (
	"meshmark/internal/cli"
)

func main() {
	cli.Execute()
}
