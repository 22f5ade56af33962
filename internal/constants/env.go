// Where: internal/constants/env.go
// What: Environment variable and path constants.
// Why: Centralize names shared by the launcher and config layers.
package constants

const (
	// Child environment variables derived from the build mode.
	EnvNodeEnv  = "NODE_ENV"
	EnvBabelEnv = "BABEL_ENV"

	// Documented build modes. Other values are passed through with a warning.
	ModeProduction  = "production"
	ModeDevelopment = "development"

	// Default invocation paths, relative to the project directory.
	DefaultWebpackBin    = "node_modules/.bin/webpack"
	DefaultWebpackConfig = "node_modules/@attic/webpack-config/index.js"

	// Optional per-project configuration file.
	ProjectConfigFile = ".bundlerc.yaml"
)
