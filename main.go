package main

import (
	"fmt"
	"os"

	"github.com/quicklaunch/shortcuts/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "shortcuts: %v\n", err)
		os.Exit(1)
	}
}
