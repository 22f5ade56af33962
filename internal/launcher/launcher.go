// Where: internal/launcher/launcher.go
// What: Webpack subprocess invocation.
// Why: Single place for argv assembly, env merge, and exit-status handling.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/attic/bundlectl/internal/constants"
	"github.com/attic/bundlectl/internal/envutil"
)

// CommandRunner defines the interface for executing the external bundler.
// The argument vector and environment are passed through verbatim; no shell
// is ever involved.
type CommandRunner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec with inherited stdio.
type ExecRunner struct{}

// Run executes a command and normalizes a non-zero child exit into an
// *ExitError so callers can propagate the exact status code.
func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return err
}

// ExitError reports that webpack ran but exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("webpack exited with status %d", e.Code)
}

// Request describes a single webpack invocation.
type Request struct {
	Mode       string
	Src        string
	Out        string
	Dir        string
	WebpackBin string
	ConfigFile string
	ExtraEnv   map[string]string
}

// Launch runs webpack once and blocks until it exits. The child environment
// sets NODE_ENV and BABEL_ENV to the request mode, then ExtraEnv, with the
// ambient process environment overlaid on top so pre-existing values win.
// A non-zero child exit is returned as *ExitError; any failure to start the
// binary is returned as a wrapped launch error.
func Launch(ctx context.Context, runner CommandRunner, req Request) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}

	bin := req.WebpackBin
	if bin == "" {
		bin = constants.DefaultWebpackBin
	}
	configFile := req.ConfigFile
	if configFile == "" {
		configFile = constants.DefaultWebpackConfig
	}

	env := envutil.Merge(map[string]string{
		constants.EnvNodeEnv:  req.Mode,
		constants.EnvBabelEnv: req.Mode,
	}, req.ExtraEnv, os.Environ())

	err := runner.Run(ctx, req.Dir, env, bin, "--config", configFile, req.Src, req.Out)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return fmt.Errorf("launch webpack: %w", err)
}
