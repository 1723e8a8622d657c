// Package pages builds the bodies of the aggregate site pages: the home page,
// the archive and the category pages.
package pages

import (
	"html"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/category"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

// Output file names of the aggregate pages.
const (
	HomeFile       = "index.html"
	ArchiveFile    = "all.html"
	CategoriesFile = "categories.html"
)

// DefaultRecentPosts is how many posts the home page lists.
const DefaultRecentPosts = 10

// Home appends the most recent posts to the raw index template.
func Home(index string, posts []*post.Post, n int) string {
	var b strings.Builder
	b.WriteString(index)
	b.WriteString(`<div id="recent-posts"><h2>Recent Posts</h2><ul>`)
	for _, p := range post.Recent(posts, n) {
		writeItem(&b, p)
	}
	b.WriteString("</ul>")
	b.WriteString(`<a href="./` + ArchiveFile + `">» all posts</a></div>`)
	return b.String()
}

// Archive lists every post grouped by year.
func Archive(posts []*post.Post) string {
	var b strings.Builder
	for _, g := range post.GroupByYear(posts) {
		b.WriteString("<h2>")
		b.WriteString(strconv.Itoa(g.Year))
		b.WriteString("</h2><ul>")
		for _, p := range g.Posts {
			writeItem(&b, p)
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// CategoriesIndex lists every category with its post count, followed by the
// post list of each category.
func CategoriesIndex(ix *category.Index) string {
	var b strings.Builder
	b.WriteString("<h2>Categories</h2><ul>")
	for _, e := range ix.Entries() {
		b.WriteString(`<li><a href="./`)
		b.WriteString(html.EscapeString(e.Category.Path))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(e.Category.Name))
		b.WriteString("</a> (")
		b.WriteString(strconv.Itoa(len(e.Posts)))
		b.WriteString(")</li>")
	}
	b.WriteString("</ul>")
	for _, e := range ix.Entries() {
		b.WriteString(CategoryList(e.Category, e.Posts))
	}
	return b.String()
}

// CategoryPage is the body of a single category page.
func CategoryPage(c category.Category, posts []*post.Post) string {
	return CategoryList(c, posts)
}

// CategoryList renders the post list block of one category, newest first.
func CategoryList(c category.Category, posts []*post.Post) string {
	var b strings.Builder
	b.WriteString(`<div id="category-list"><h2>`)
	b.WriteString(html.EscapeString(c.Name))
	b.WriteString("</h2><ul>")
	for _, p := range post.SortByRecency(posts) {
		writeItem(&b, p)
	}
	b.WriteString("</ul></div>")
	return b.String()
}

func writeItem(b *strings.Builder, p *post.Post) {
	b.WriteString(`<li><a href="`)
	b.WriteString(html.EscapeString(p.Path))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(p.Metadata.Title))
	b.WriteString(" - [")
	b.WriteString(p.Metadata.FormattedDate())
	b.WriteString("]</a></li>")
}
