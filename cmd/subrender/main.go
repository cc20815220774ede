package main

import (
	"os"

	"github.com/Lakunake/web-subtitle-renderer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
