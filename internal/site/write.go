package site

import (
	"context"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// writeOutput writes data to rel below the output directory, creating parent
// directories as needed.
func (g *Generator) writeOutput(ctx context.Context, rel string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(g.outputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return errors.FileSystemError("failed to create output directory").
			WithCause(err).
			WithContext("path", filepath.Dir(dst)).
			Build()
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil { //nolint:gosec // G306: published site files are world readable
		return errors.FileSystemError("failed to write output file").
			WithCause(err).
			WithContext("path", dst).
			Build()
	}
	return nil
}

// writePage wraps body in the site chrome at the output root and writes it.
func (g *Generator) writePage(ctx context.Context, bs *buildState, rel, body string) error {
	wrapped, err := bs.layout.WrapHeaderFooter(body, 0)
	if err != nil {
		return errors.BuildError("failed to compose page").
			WithCause(err).
			WithContext("page", rel).
			Build()
	}
	doc := templates.AddHead(wrapped, g.config.Title, 0)
	if err := g.writeOutput(ctx, rel, []byte(doc)); err != nil {
		return err
	}
	bs.report.PagesWritten++
	return nil
}
