// Where: cmd/bundlectl/main.go
// What: CLI entrypoint.
// Why: Launch webpack with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/attic/bundlectl/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
