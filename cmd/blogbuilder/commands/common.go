package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/normalization"
)

// LogLevelEnv overrides the log level chosen by --verbose.
const LogLevelEnv = "BLOGBUILDER_LOG_LEVEL"

var logLevels = normalization.New(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
})

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the static site from a source directory"`
	Init  InitCmd  `cmd:"" help:"Scaffold a new site source directory"`
	New   NewCmd   `cmd:"" help:"Create a new post with front matter"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel returns debug for --verbose unless BLOGBUILDER_LOG_LEVEL names
// another level.
func parseLogLevel(verbose bool) slog.Level {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if l, ok := logLevels.Lookup(os.Getenv(LogLevelEnv)); ok {
		level = l
	}
	return level
}
