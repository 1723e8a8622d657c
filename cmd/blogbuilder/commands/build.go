package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/pages"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Input       string `short:"i" help:"Site source directory" required:"" env:"BLOGBUILDER_INPUT" type:"path"`
	Output      string `short:"o" help:"Output directory for generated site" required:"" env:"BLOGBUILDER_OUTPUT" type:"path"`
	Recent      int    `help:"Number of posts listed on the home page" default:"10"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file after the build" type:"path"`
}

// BuildOptions are the inputs of RunBuild.
type BuildOptions struct {
	Input       string
	Output      string
	Recent      int
	MetricsFile string
}

func (b *BuildCmd) Run(_ *Global, _ *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return RunBuild(sigctx, BuildOptions{
		Input:       b.Input,
		Output:      b.Output,
		Recent:      b.Recent,
		MetricsFile: b.MetricsFile,
	})
}

// RunBuild generates the site described by opts.
func RunBuild(ctx context.Context, opts BuildOptions) error {
	// Provide friendly user-facing messages on stdout for CLI integration tests.
	fmt.Println("Starting blogbuilder build")
	fmt.Printf("Input Path: %s\n", opts.Input)
	fmt.Printf("Output Path: %s\n", opts.Output)

	if err := os.MkdirAll(opts.Output, 0o750); err != nil {
		return errors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext("path", opts.Output).
			Build()
	}

	if info, err := os.Stat(opts.Input); err != nil || !info.IsDir() {
		slog.Warn("Input path is not a directory, nothing to build", logfields.Path(opts.Input))
		return nil
	}

	cfg, err := config.Load(opts.Input)
	if err != nil {
		return err
	}

	genOpts := []site.Option{site.WithRecentPosts(opts.Recent)}
	var reg *prom.Registry
	if opts.MetricsFile != "" {
		reg = prom.NewRegistry()
		genOpts = append(genOpts, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	report, err := site.NewGenerator(cfg, opts.Input, opts.Output, genOpts...).Generate(ctx)

	if reg != nil {
		if werr := metrics.WriteTextfile(reg, opts.MetricsFile); werr != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(opts.MetricsFile), logfields.Error(werr))
		} else {
			slog.Debug("Wrote metrics file", logfields.Path(opts.MetricsFile))
		}
	}

	if err != nil {
		fmt.Println("Build failed")
		return err
	}

	fmt.Printf("Built %d posts in %d categories (%d pages)\n", report.Posts, report.Categories, report.PagesWritten)
	fmt.Println("Done!")
	return nil
}

// DefaultBuildOptions returns options with the command line defaults.
func DefaultBuildOptions(input, output string) BuildOptions {
	return BuildOptions{Input: input, Output: output, Recent: pages.DefaultRecentPosts}
}
