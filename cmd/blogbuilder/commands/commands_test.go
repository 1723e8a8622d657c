package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		env     string
		verbose bool
		want    slog.Level
	}{
		{"", false, slog.LevelInfo},
		{"", true, slog.LevelDebug},
		{"warn", true, slog.LevelWarn},
		{"ERROR", false, slog.LevelError},
		{"debug", false, slog.LevelDebug},
		{"bogus", false, slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv(LogLevelEnv, tc.env)
			assert.Equal(t, tc.want, parseLogLevel(tc.verbose))
		})
	}
}

func TestRunInit_ScaffoldsSite(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, RunInit(dir, false))

	for _, f := range []string{"config.yaml", "header.md", "footer.md", "index.html", "style/style.css", "posts/hello-world.md"} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}
	assert.DirExists(t, filepath.Join(dir, "images"))
}

func TestRunInit_RefusesExistingSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, RunInit(dir, false))

	err := RunInit(dir, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "header.md"), []byte("custom\n"), 0o600))
	require.NoError(t, RunInit(dir, true))
	data, err := os.ReadFile(filepath.Join(dir, "header.md"))
	require.NoError(t, err)
	assert.NotEqual(t, "custom\n", string(data))
}

func TestRunNew_RoundTripsMetadata(t *testing.T) {
	input := t.TempDir()

	path, err := RunNew(input, NewPostOptions{
		Title:      "Crème Brûlée: a recipe",
		Categories: []string{"Food", "Notes"},
		Summary:    "Sweet",
		Date:       "2024-03-15",
		Dir:        "recipes",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(input, "posts", "recipes", "creme-brulee-a-recipe.md"), path)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	meta, body, err := post.ParseMetadata(src)
	require.NoError(t, err)
	assert.Equal(t, "Crème Brûlée: a recipe", meta.Title)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), meta.Date)
	assert.Equal(t, []string{"Food", "Notes"}, meta.Categories)
	assert.Equal(t, "Sweet", meta.Summary)
	assert.NotEmpty(t, body)
}

func TestRunNew_Validation(t *testing.T) {
	input := t.TempDir()

	_, err := RunNew(input, NewPostOptions{Title: "x", Date: "15/03/2024"})
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	_, err = RunNew(input, NewPostOptions{Title: "x", Dir: "../escape"})
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	_, err = RunNew(input, NewPostOptions{Title: "Same"})
	require.NoError(t, err)
	_, err = RunNew(input, NewPostOptions{Title: "Same"})
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	_, err = RunNew(input, NewPostOptions{Title: "Same", Force: true})
	assert.NoError(t, err)
}

func TestRunBuild_InitializedSite(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "public")
	require.NoError(t, RunInit(input, false))
	_, err := RunNew(input, NewPostOptions{Title: "Second", Categories: []string{"Notes"}, Date: "2024-02-01"})
	require.NoError(t, err)

	opts := DefaultBuildOptions(input, output)
	opts.MetricsFile = filepath.Join(t.TempDir(), "blogbuilder.prom")
	require.NoError(t, RunBuild(context.Background(), opts))

	for _, f := range []string{"index.html", "all.html", "categories.html", "notes.html", "feed.xml", "posts/hello-world.html", "posts/second.html", "style/style.css"} {
		assert.FileExists(t, filepath.Join(output, filepath.FromSlash(f)))
	}

	metricsText, err := os.ReadFile(opts.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metricsText), "blogbuilder_stage_duration_seconds")
	assert.Contains(t, string(metricsText), `blogbuilder_pages_written_total{kind="post"} 2`)
}

func TestRunBuild_InputNotADirectory(t *testing.T) {
	output := filepath.Join(t.TempDir(), "public")
	input := filepath.Join(t.TempDir(), "missing")

	require.NoError(t, RunBuild(context.Background(), DefaultBuildOptions(input, output)))
	assert.DirExists(t, output)
	assert.NoFileExists(t, filepath.Join(output, "index.html"))
}

func TestRunBuild_MissingConfig(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	err := RunBuild(context.Background(), DefaultBuildOptions(input, output))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	assert.Equal(t, 3, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestBuildCmd_OutputIsRequired(t *testing.T) {
	t.Setenv("BLOGBUILDER_OUTPUT", "")
	require.NoError(t, os.Unsetenv("BLOGBUILDER_OUTPUT"))

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("blogbuilder"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"build", "--input", "site"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")

	_, err = parser.Parse([]string{"build", "--input", "site", "--output", "out"})
	require.NoError(t, err)
	assert.Equal(t, 10, cli.Build.Recent)
}
