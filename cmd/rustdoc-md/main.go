package main

import (
	"os"

	"github.com/custodia-labs/rustdoc-md/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
