// Package feed renders the RSS 2.0 feed of a site.
package feed

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/post"
	"git.home.luguber.info/inful/blogbuilder/internal/version"
)

// FileName is the feed path relative to the output root.
const FileName = "feed.xml"

// Build renders the feed for posts in their given order.
func Build(cfg *config.SiteConfig, posts []*post.Post) []byte {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)
	buf.WriteString(`<rss version="2.0">`)
	buf.WriteString("\n  <channel>\n")

	writeElement(&buf, "title", cfg.Title, 4)
	writeElement(&buf, "link", strings.TrimRight(cfg.URL, "/"), 4)
	writeElement(&buf, "description", cfg.Description, 4)
	writeElement(&buf, "generator", "blogbuilder/"+version.Version, 4)
	if last, ok := lastBuildDate(posts); ok {
		writeElement(&buf, "lastBuildDate", last.Format(time.RFC1123Z), 4)
	}

	for _, p := range posts {
		writeItem(&buf, p)
	}

	buf.WriteString("  </channel>\n</rss>\n")
	return buf.Bytes()
}

func writeItem(buf *bytes.Buffer, p *post.Post) {
	buf.WriteString("    <item>\n")
	writeElement(buf, "title", p.Metadata.Title, 6)
	writeElement(buf, "link", p.PublicLink, 6)
	writeText(buf, "description", p.Metadata.Summary, 6)
	writeElement(buf, "pubDate", p.Metadata.Date.Format(time.RFC1123Z), 6)
	if p.PublicLink != "" {
		buf.WriteString(`      <guid isPermaLink="true">`)
		_ = xml.EscapeText(buf, []byte(p.PublicLink))
		buf.WriteString("</guid>\n")
	}
	for _, c := range p.Metadata.Categories {
		if strings.TrimSpace(c) != "" {
			writeElement(buf, "category", c, 6)
		}
	}
	buf.WriteString("    </item>\n")
}

func writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}
	writeText(buf, tag, content, indent)
}

// writeText writes the element even when content is empty.
func writeText(buf *bytes.Buffer, tag, content string, indent int) {
	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	_ = xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func lastBuildDate(posts []*post.Post) (time.Time, bool) {
	var last time.Time
	for _, p := range posts {
		if p.Metadata.Date.After(last) {
			last = p.Metadata.Date
		}
	}
	return last, !last.IsZero()
}
