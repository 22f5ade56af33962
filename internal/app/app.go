// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable argument-to-invocation dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/attic/bundlectl/internal/config"
	"github.com/attic/bundlectl/internal/constants"
	"github.com/attic/bundlectl/internal/launcher"
	"github.com/attic/bundlectl/internal/ui"
	"github.com/attic/bundlectl/internal/version"
	"github.com/joho/godotenv"
)

// Dependencies holds the injected collaborators required to run a build.
// This structure enables dependency injection for testing.
type Dependencies struct {
	ProjectDir   string
	Out          io.Writer
	Runner       launcher.CommandRunner
	ConfigLoader func(dir string) (config.Project, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// The mode is positional; everything else is a flag.
type CLI struct {
	Mode    string `arg:"" optional:"" help:"Build mode: \"production\" or \"development\""`
	Src     string `help:"Path to the entry source file"`
	Out     string `help:"Path to the bundled output file"`
	Webpack string `help:"Webpack binary (default: ${default_webpack})"`
	Config  string `help:"Webpack config file (default: ${default_config})"`
	Chdir   string `short:"C" help:"Directory to run webpack from (default: current directory)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`
	Version bool   `short:"V" help:"Show version information"`
}

const usageHint = "usage: bundlectl <mode> --src <file> --out <file>"

// Run parses the arguments, loads project configuration, and launches
// webpack once. Returns the process exit code: 0 on success, 2 for argument
// or config errors, the child's own status when webpack fails, and 1 when
// the binary cannot be started at all.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	console := ui.New(out)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("bundlectl"),
		kong.Description("Bundle a source file with webpack."),
		kong.Vars{
			"default_webpack": constants.DefaultWebpackBin,
			"default_config":  constants.DefaultWebpackConfig,
		},
	)
	if err != nil {
		console.Errorf("%v", err)
		return 1
	}

	if _, err := parser.Parse(args); err != nil {
		console.Errorf("%v", err)
		console.Usagef(usageHint)
		return 2
	}

	if cli.Version {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	if cli.Mode == "" || cli.Src == "" || cli.Out == "" {
		console.Errorf("mode, --src, and --out are required")
		console.Usagef(usageHint)
		return 2
	}
	if cli.Mode != constants.ModeProduction && cli.Mode != constants.ModeDevelopment {
		console.Warnf("unsupported mode %q; expected %q or %q",
			cli.Mode, constants.ModeProduction, constants.ModeDevelopment)
	}

	projectDir := deps.ProjectDir
	if projectDir == "" {
		projectDir, err = os.Getwd()
		if err != nil {
			console.Errorf("%v", err)
			return 1
		}
	}

	loadEnvFile(cli, projectDir, console)

	loader := deps.ConfigLoader
	if loader == nil {
		loader = config.Load
	}
	cfg, err := loader(projectDir)
	if err != nil {
		console.Errorf("%v", err)
		return 2
	}

	runner := deps.Runner
	if runner == nil {
		runner = launcher.ExecRunner{}
	}

	dir := cli.Chdir
	if dir == "" {
		dir = projectDir
	}

	req := launcher.Request{
		Mode:       cli.Mode,
		Src:        cli.Src,
		Out:        cli.Out,
		Dir:        dir,
		WebpackBin: firstNonEmpty(cli.Webpack, cfg.Webpack),
		ConfigFile: firstNonEmpty(cli.Config, cfg.Config),
		ExtraEnv:   cfg.Env,
	}

	if err := launcher.Launch(context.Background(), runner, req); err != nil {
		console.Errorf("%v", err)
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Code > 0 {
				return exitErr.Code
			}
			return 1
		}
		return 1
	}
	return 0
}

// loadEnvFile loads an explicit --env-file, or an implicit .env in the
// project directory. Loaded values never overwrite existing variables, so
// they rank as ambient environment in the child env merge.
func loadEnvFile(cli CLI, projectDir string, console *ui.Console) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			console.Warnf("failed to load env file %s: %v", cli.EnvFile, err)
		}
		return
	}
	path := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		console.Warnf("failed to load %s: %v", path, err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
