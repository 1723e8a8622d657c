package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(title string, y int, m time.Month, d int) *Post {
	return &Post{Metadata: Metadata{Title: title, Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}}
}

func titles(posts []*Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Metadata.Title)
	}
	return out
}

func TestHTMLFileName(t *testing.T) {
	assert.Equal(t, "hello.html", HTMLFileName("hello.md"))
	assert.Equal(t, "hello.html", HTMLFileName("hello.markdown"))
	assert.Equal(t, "notes.v2.html", HTMLFileName("dir/notes.v2.md"))
	assert.Equal(t, "README.html", HTMLFileName("README"))
}

func TestIsSource(t *testing.T) {
	assert.True(t, IsSource("a.md"))
	assert.True(t, IsSource("a.MARKDOWN"))
	assert.False(t, IsSource("a.txt"))
	assert.False(t, IsSource("md"))
}

func TestSortByRecency_StableForEqualDates(t *testing.T) {
	posts := []*Post{
		dated("old", 2020, 1, 1),
		dated("first-same", 2022, 6, 1),
		dated("new", 2023, 1, 1),
		dated("second-same", 2022, 6, 1),
	}

	sorted := SortByRecency(posts)
	assert.Equal(t, []string{"new", "first-same", "second-same", "old"}, titles(sorted))
	assert.Equal(t, "old", posts[0].Metadata.Title, "input must not be reordered")
}

func TestRecent(t *testing.T) {
	posts := []*Post{
		dated("a", 2020, 1, 1),
		dated("b", 2021, 1, 1),
		dated("c", 2022, 1, 1),
	}

	assert.Equal(t, []string{"c", "b"}, titles(Recent(posts, 2)))
	assert.Len(t, Recent(posts, 10), 3)
	assert.Empty(t, Recent(posts, 0))
	assert.Empty(t, Recent(nil, 5))
}

func TestGroupByYear(t *testing.T) {
	posts := []*Post{
		dated("jan21", 2021, 1, 5),
		dated("mar23", 2023, 3, 1),
		dated("dec21", 2021, 12, 24),
		dated("jan23", 2023, 1, 1),
	}

	groups := GroupByYear(posts)
	require.Len(t, groups, 2)
	assert.Equal(t, 2023, groups[0].Year)
	assert.Equal(t, []string{"mar23", "jan23"}, titles(groups[0].Posts))
	assert.Equal(t, 2021, groups[1].Year)
	assert.Equal(t, []string{"dec21", "jan21"}, titles(groups[1].Posts))
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":         "hello-world",
		"  Crème brûlée!  ":   "creme-brulee",
		"Go 1.24: what's new": "go-1-24-what-s-new",
		"???":                 "post",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}
