package post

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// Post is a rendered source file. Posts are created once by the site
// generator and shared read-only by every page builder and the feed.
type Post struct {
	Metadata Metadata
	// Content is the fully composed HTML page.
	Content string
	// Path links to the page from the site root, e.g. "./posts/hello.html".
	Path string
	// PublicLink is the absolute URL of the page.
	PublicLink string
	// SourcePath is the Markdown file relative to the posts directory.
	SourcePath string
	// OutputPath is the page relative to the output root, slash separated.
	OutputPath string
	// Depth is how many directories below the output root the page lives.
	Depth int
}

// HTMLFileName returns the stem of name with an .html extension, whatever
// the original extension was.
func HTMLFileName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// IsSource reports whether a file name is a Markdown post source.
func IsSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// SortByRecency returns a copy of posts ordered newest first. Posts sharing a
// date keep their original relative order.
func SortByRecency(posts []*Post) []*Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b *Post) int {
		return b.Metadata.Date.Compare(a.Metadata.Date)
	})
	return sorted
}

// Recent returns at most n of the newest posts.
func Recent(posts []*Post, n int) []*Post {
	if n <= 0 {
		return nil
	}
	sorted := SortByRecency(posts)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// YearGroup is the set of posts published in one calendar year.
type YearGroup struct {
	Year  int
	Posts []*Post
}

// GroupByYear partitions posts by the year of their date. Groups are ordered
// newest year first and posts inside a group newest first.
func GroupByYear(posts []*Post) []YearGroup {
	byYear := make(map[int][]*Post)
	for _, p := range SortByRecency(posts) {
		y := p.Metadata.Date.Year()
		byYear[y] = append(byYear[y], p)
	}

	groups := make([]YearGroup, 0, len(byYear))
	for y, ps := range byYear {
		groups = append(groups, YearGroup{Year: y, Posts: ps})
	}
	slices.SortFunc(groups, func(a, b YearGroup) int {
		return cmp.Compare(b.Year, a.Year)
	})
	return groups
}
