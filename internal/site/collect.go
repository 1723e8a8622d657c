package site

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// findSources returns the post sources below root, relative to root and in
// lexical walk order. A missing root yields no sources.
func findSources(root string) ([]string, error) {
	info, err := os.Stat(root)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var sources []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !post.IsSource(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// outputPath maps a source path relative to the posts directory to its page
// path relative to the output root.
func outputPath(rel string) string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		dir = ""
	}
	return path.Join(PostsDir, dir, post.HTMLFileName(rel))
}

// pageDepth is the number of directories between the output root and page.
func pageDepth(outRel string) int {
	return strings.Count(outRel, "/")
}

func (g *Generator) renderPost(ctx context.Context, layout *templates.Layout, rel string) (*post.Post, error) {
	srcPath := filepath.Join(g.inputDir, PostsDir, rel)
	src, err := os.ReadFile(filepath.Clean(srcPath))
	if err != nil {
		return nil, errors.FileSystemError("failed to read post").
			WithCause(err).
			WithContext("file", rel).
			Build()
	}

	meta, body, err := post.ParseMetadata(src)
	if err != nil {
		msg := "invalid front matter"
		if stderrors.Is(err, frontmatter.ErrMissingClosingDelimiter) {
			msg = "unterminated front matter"
		}
		return nil, errors.ContentError(msg).
			WithCause(err).
			WithContext("file", rel).
			Build()
	}

	html, err := g.renderer.Render(body)
	if err != nil {
		return nil, errors.ContentError("failed to render markdown").
			WithCause(err).
			WithContext("file", rel).
			Build()
	}

	if meta.HasDate() {
		html = templates.AddDate(html, meta.Date)
	}
	html = templates.AddTitleHeading(html, meta.Title)

	outRel := outputPath(rel)
	depth := pageDepth(outRel)
	wrapped, err := layout.WrapHeaderFooter(html, depth)
	if err != nil {
		return nil, errors.ContentError("failed to compose page").
			WithCause(err).
			WithContext("file", rel).
			Build()
	}
	doc := templates.AddHead(wrapped, meta.Title, depth)

	if err := g.writeOutput(ctx, outRel, []byte(doc)); err != nil {
		return nil, err
	}
	slog.Debug("Wrote post", logfields.Post(meta.Title), logfields.Path(outRel))

	return &post.Post{
		Metadata:   meta,
		Content:    doc,
		Path:       "./" + outRel,
		PublicLink: g.config.Link(outRel),
		SourcePath: filepath.ToSlash(rel),
		OutputPath: outRel,
		Depth:      depth,
	}, nil
}
