// Package category groups posts by the categories named in their front matter.
package category

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

var lower = cases.Lower(language.Und)

// Category is one category page of the site.
type Category struct {
	// Name is the spelling first seen in front matter.
	Name string
	// Key is the normalized grouping key.
	Key string
	// Path is the page file name relative to the output root.
	Path string
}

// Key normalizes a category name: whitespace is dropped and letters are
// lowercased, so "Web Dev" and "webdev" share one page.
func Key(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return lower.String(stripped)
}

// reserved are page stems owned by the site itself.
var reserved = map[string]bool{
	"index":      true,
	"all":        true,
	"categories": true,
}

// New returns the category for a display name.
func New(name string) Category {
	key := Key(name)
	return Category{Name: name, Key: key, Path: fileStem(key) + ".html"}
}

// fileStem keeps category pages flat in the output root and clear of the
// site's own pages.
func fileStem(key string) string {
	stem := strings.NewReplacer("/", "-", "\\", "-").Replace(key)
	if reserved[stem] {
		stem = "category-" + stem
	}
	return stem
}

// Entry is a category together with the posts that list it.
type Entry struct {
	Category Category
	Posts    []*post.Post
}

// Index maps categories to posts in first-seen order. Every entry owns a
// distinct page path.
type Index struct {
	entries []*Entry
	byKey   map[string]*Entry
	paths   map[string]bool
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byKey: make(map[string]*Entry), paths: make(map[string]bool)}
}

// Add records p under the category called name. A post naming the same
// category twice is recorded twice.
func (ix *Index) Add(name string, p *post.Post) {
	key := Key(name)
	e, ok := ix.byKey[key]
	if !ok {
		c := New(name)
		c.Path = ix.claimPath(c.Path)
		e = &Entry{Category: c}
		ix.byKey[key] = e
		ix.entries = append(ix.entries, e)
	}
	e.Posts = append(e.Posts, p)
}

// claimPath returns path, or path with a -2, -3, ... suffix when a category
// with a different key already maps to it ("C/D" and "c-d").
func (ix *Index) claimPath(path string) string {
	stem := strings.TrimSuffix(path, ".html")
	for n := 2; ix.paths[path]; n++ {
		path = stem + "-" + strconv.Itoa(n) + ".html"
	}
	ix.paths[path] = true
	return path
}

// Entries returns the categories in first-seen order.
func (ix *Index) Entries() []*Entry {
	return ix.entries
}

// Lookup finds the entry for a category name in any spelling.
func (ix *Index) Lookup(name string) (*Entry, bool) {
	e, ok := ix.byKey[Key(name)]
	return e, ok
}

// Len returns the number of distinct categories.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Group builds the index for posts in their given order. Categories without a
// usable key are skipped.
func Group(posts []*post.Post) *Index {
	ix := NewIndex()
	for _, p := range posts {
		for _, name := range p.Metadata.Categories {
			if Key(name) == "" {
				continue
			}
			ix.Add(name, p)
		}
	}
	return ix
}
