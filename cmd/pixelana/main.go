package main

import (
	"github.com/pixelana/pixelana-go/internal/cli"
)

func main() {
	cli.Execute()
}
