package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/theantichris/pwdfmt/cmd"
)

// Set via -ldflags "-X main.version=..." at build time.
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), cmd.Execute(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
