package site

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
)

// Report summarizes one site build.
type Report struct {
	Start          time.Time
	End            time.Time
	Outcome        metrics.BuildOutcomeLabel
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]metrics.ResultLabel
	// FailedStage names the stage that aborted the build, if any.
	FailedStage StageName
	Posts       int
	Categories  int
	Assets      int
	// PagesWritten counts every HTML page and the feed.
	PagesWritten int
}

func newReport() *Report {
	return &Report{
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]metrics.ResultLabel),
	}
}

// Duration is the wall time of the build.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

func (r *Report) recordStage(name StageName, d time.Duration, result metrics.ResultLabel, rec metrics.Recorder) {
	r.StageDurations[name] = d
	r.StageResults[name] = result
	rec.ObserveStageDuration(string(name), d)
	rec.IncStageResult(string(name), result)
}

func (r *Report) finish(outcome metrics.BuildOutcomeLabel, rec metrics.Recorder) {
	r.End = time.Now()
	r.Outcome = outcome
	rec.ObserveBuildDuration(r.Duration())
	rec.IncBuildOutcome(outcome)
}

// Summary renders a one line human readable description of the build.
func (r *Report) Summary() string {
	return fmt.Sprintf("outcome=%s posts=%d categories=%d pages=%d assets=%d duration=%s",
		r.Outcome, r.Posts, r.Categories, r.PagesWritten, r.Assets, r.Duration().Round(time.Millisecond))
}
