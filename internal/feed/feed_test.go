package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

func testConfig() *config.SiteConfig {
	return &config.SiteConfig{
		Title:       "My Blog",
		URL:         "https://example.com/",
		Description: "Notes & thoughts",
	}
}

func TestBuild_ParsesAsRSS(t *testing.T) {
	posts := []*post.Post{
		{
			Metadata: post.Metadata{
				Title:      "Hello",
				Date:       time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
				Categories: []string{"Notes"},
				Summary:    "First post",
			},
			PublicLink: "https://example.com/posts/hello.html",
		},
		{
			Metadata: post.Metadata{
				Title: "Second <draft>",
				Date:  time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
			},
			PublicLink: "https://example.com/posts/second.html",
		},
	}

	out := Build(testConfig(), posts)

	parsed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "2.0", parsed.FeedVersion)
	assert.Equal(t, "My Blog", parsed.Title)
	assert.Equal(t, "https://example.com", parsed.Link)
	assert.Equal(t, "Notes & thoughts", parsed.Description)
	require.Len(t, parsed.Items, 2)

	first := parsed.Items[0]
	assert.Equal(t, "Hello", first.Title)
	assert.Equal(t, "https://example.com/posts/hello.html", first.Link)
	assert.Equal(t, "https://example.com/posts/hello.html", first.GUID)
	assert.Equal(t, "First post", first.Description)
	assert.Equal(t, []string{"Notes"}, first.Categories)
	require.NotNil(t, first.PublishedParsed)
	assert.True(t, first.PublishedParsed.Equal(posts[0].Metadata.Date))

	assert.Equal(t, "Second <draft>", parsed.Items[1].Title)
}

func TestBuild_RFC822Dates(t *testing.T) {
	posts := []*post.Post{{
		Metadata:   post.Metadata{Title: "Hello", Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		PublicLink: "https://example.com/posts/hello.html",
	}}

	out := Build(testConfig(), posts)
	assert.Contains(t, string(out), "<pubDate>Mon, 01 May 2023 00:00:00 +0000</pubDate>")
	assert.Contains(t, string(out), "<lastBuildDate>Mon, 01 May 2023 00:00:00 +0000</lastBuildDate>")
	assert.Contains(t, string(out), `<guid isPermaLink="true">https://example.com/posts/hello.html</guid>`)
}

func TestBuild_NoPosts(t *testing.T) {
	out := Build(testConfig(), nil)
	assert.NotContains(t, string(out), "<item>")
	assert.NotContains(t, string(out), "lastBuildDate")
	assert.True(t, strings.HasPrefix(string(out), "<?xml"))

	parsed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
}

func TestBuild_EmptySummaryKeepsDescription(t *testing.T) {
	posts := []*post.Post{{
		Metadata:   post.Metadata{Title: "Untold", Date: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		PublicLink: "https://example.com/posts/untold.html",
	}}

	out := string(Build(testConfig(), posts))
	item := out[strings.Index(out, "<item>"):]
	assert.Contains(t, item, "<description></description>")

	parsed, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.Empty(t, parsed.Items[0].Description)
}
