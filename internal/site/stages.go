package site

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/category"
	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// StageName identifies a build stage.
type StageName string

// Build stages in execution order.
const (
	StageLoadLayout      StageName = "load_layout"
	StageCopyAssets      StageName = "copy_assets"
	StageCollectPosts    StageName = "collect_posts"
	StageGroupCategories StageName = "group_categories"
	StageWritePages      StageName = "write_pages"
	StageWriteFeed       StageName = "write_feed"
)

// buildState is the data handed from one stage to the next.
type buildState struct {
	gen    *Generator
	report *Report
	layout *templates.Layout
	posts  []*post.Post
	index  *category.Index
}

type stageFunc func(ctx context.Context, bs *buildState) error

type stageDef struct {
	name StageName
	fn   stageFunc
}

func pipeline() []stageDef {
	return []stageDef{
		{StageLoadLayout, stageLoadLayout},
		{StageCopyAssets, stageCopyAssets},
		{StageCollectPosts, stageCollectPosts},
		{StageGroupCategories, stageGroupCategories},
		{StageWritePages, stageWritePages},
		{StageWriteFeed, stageWriteFeed},
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first error. Cancellation is observed between stages.
func runStages(ctx context.Context, bs *buildState, stages []stageDef) error {
	rec := bs.gen.recorder
	for _, st := range stages {
		select {
		case <-ctx.Done():
			bs.report.recordStage(st.name, 0, metrics.ResultCanceled, rec)
			bs.report.FailedStage = st.name
			return errors.WrapError(ctx.Err(), errors.CategoryBuild, "build canceled").
				WithContext("stage", string(st.name)).
				Build()
		default:
		}

		slog.Debug("Stage started", logfields.Stage(string(st.name)))
		t0 := time.Now()
		err := st.fn(ctx, bs)
		dur := time.Since(t0)

		if err != nil {
			bs.report.recordStage(st.name, dur, metrics.ResultFatal, rec)
			bs.report.FailedStage = st.name
			slog.Error("Stage failed", logfields.Stage(string(st.name)), logfields.DurationMS(ms(dur)), logfields.Error(err))
			return err
		}

		bs.report.recordStage(st.name, dur, metrics.ResultSuccess, rec)
		slog.Debug("Stage completed", logfields.Stage(string(st.name)), logfields.DurationMS(ms(dur)))
	}
	return nil
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
