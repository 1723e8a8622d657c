package site

import (
	"context"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/blogbuilder/internal/assets"
	"git.home.luguber.info/inful/blogbuilder/internal/category"
	"git.home.luguber.info/inful/blogbuilder/internal/feed"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/pages"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

func stageLoadLayout(_ context.Context, bs *buildState) error {
	layout, err := templates.Load(bs.gen.inputDir, bs.gen.renderer)
	if err != nil {
		return err
	}
	bs.layout = layout
	return nil
}

func stageCopyAssets(_ context.Context, bs *buildState) error {
	n, err := assets.CopySiteAssets(bs.gen.inputDir, bs.gen.outputDir)
	bs.report.Assets = n
	return err
}

func stageCollectPosts(ctx context.Context, bs *buildState) error {
	g := bs.gen
	root := filepath.Join(g.inputDir, PostsDir)
	sources, err := findSources(root)
	if err != nil {
		return errors.FileSystemError("failed to scan posts").
			WithCause(err).
			WithContext("path", root).
			Build()
	}
	if len(sources) == 0 {
		slog.Warn("No posts found", logfields.Path(root))
	}

	posts := make([]*post.Post, 0, len(sources))
	for _, rel := range sources {
		p, err := g.renderPost(ctx, bs.layout, rel)
		if err != nil {
			return err
		}
		posts = append(posts, p)
	}

	bs.posts = posts
	bs.report.Posts = len(posts)
	bs.report.PagesWritten += len(posts)
	g.recorder.AddPagesWritten(metrics.PageKindPost, len(posts))
	return nil
}

func stageGroupCategories(_ context.Context, bs *buildState) error {
	bs.index = category.Group(bs.posts)
	bs.report.Categories = bs.index.Len()
	for _, e := range bs.index.Entries() {
		slog.Debug("Category", logfields.Category(e.Category.Name), logfields.Count(len(e.Posts)))
	}
	return nil
}

func stageWritePages(ctx context.Context, bs *buildState) error {
	g := bs.gen

	if err := g.writePage(ctx, bs, pages.HomeFile, pages.Home(bs.layout.Index, bs.posts, g.recentPosts)); err != nil {
		return err
	}
	g.recorder.AddPagesWritten(metrics.PageKindHome, 1)

	if err := g.writePage(ctx, bs, pages.ArchiveFile, pages.Archive(bs.posts)); err != nil {
		return err
	}
	if err := g.writePage(ctx, bs, pages.CategoriesFile, pages.CategoriesIndex(bs.index)); err != nil {
		return err
	}
	g.recorder.AddPagesWritten(metrics.PageKindArchive, 2)

	for _, e := range bs.index.Entries() {
		if err := g.writePage(ctx, bs, e.Category.Path, pages.CategoryPage(e.Category, e.Posts)); err != nil {
			return err
		}
	}
	g.recorder.AddPagesWritten(metrics.PageKindCategory, bs.index.Len())
	return nil
}

func stageWriteFeed(ctx context.Context, bs *buildState) error {
	g := bs.gen
	if err := g.writeOutput(ctx, feed.FileName, feed.Build(g.config, bs.posts)); err != nil {
		return err
	}
	bs.report.PagesWritten++
	g.recorder.AddPagesWritten(metrics.PageKindFeed, 1)
	return nil
}
