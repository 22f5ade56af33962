// Where: cmd/bundlectl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/attic/bundlectl/internal/app"
	"github.com/attic/bundlectl/internal/config"
	"github.com/attic/bundlectl/internal/launcher"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI:
// the project directory, the exec-backed command runner, and the project
// config loader.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		ProjectDir:   projectDir,
		Out:          os.Stdout,
		Runner:       launcher.ExecRunner{},
		ConfigLoader: config.Load,
	}, nil
}
