// Package site runs the blog build: it turns an input directory of Markdown
// posts and layout files into a static HTML site with an RSS feed.
package site

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/pages"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// PostsDir is the directory under the input root holding post sources.
const PostsDir = "posts"

// Generator builds a site from an input directory into an output directory.
type Generator struct {
	config      *config.SiteConfig
	inputDir    string
	outputDir   string
	renderer    templates.Renderer
	recorder    metrics.Recorder
	recentPosts int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithRecentPosts sets how many posts the home page lists.
func WithRecentPosts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.recentPosts = n
		}
	}
}

// WithRenderer replaces the Markdown renderer.
func WithRenderer(r templates.Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// NewGenerator returns a Generator for cfg reading from inputDir and writing
// to outputDir.
func NewGenerator(cfg *config.SiteConfig, inputDir, outputDir string, opts ...Option) *Generator {
	g := &Generator{
		config:      cfg,
		inputDir:    inputDir,
		outputDir:   outputDir,
		renderer:    markdown.NewRenderer(markdown.WithHeadingIDs()),
		recorder:    metrics.NoopRecorder{},
		recentPosts: pages.DefaultRecentPosts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs every build stage. The returned report is never nil and
// describes the build even when it failed.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	bs := &buildState{gen: g, report: newReport()}

	slog.Info("Building site", logfields.Path(g.inputDir), logfields.Output(g.outputDir))
	err := runStages(ctx, bs, pipeline())

	switch {
	case err == nil:
		bs.report.finish(metrics.BuildOutcomeSuccess, g.recorder)
		slog.Info("Site built", slog.String("summary", bs.report.Summary()))
	case ctx.Err() != nil:
		bs.report.finish(metrics.BuildOutcomeCanceled, g.recorder)
	default:
		bs.report.finish(metrics.BuildOutcomeFailed, g.recorder)
	}
	return bs.report, err
}
