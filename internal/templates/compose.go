package templates

import (
	"html"
	"strings"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

// StylesheetPath is the site stylesheet relative to the output root.
const StylesheetPath = "style/style.css"

// RelPrefix returns the link prefix that reaches the output root from a page
// depth directories below it.
func RelPrefix(depth int) string {
	if depth <= 0 {
		return "./"
	}
	return strings.Repeat("../", depth)
}

// WrapHeaderFooter places body inside the site container between the header
// and footer. Relative header and footer links are adjusted for depth.
func (l *Layout) WrapHeaderFooter(body string, depth int) (string, error) {
	header, err := RewriteRelativeLinks(l.Header, depth)
	if err != nil {
		return "", err
	}
	footer, err := RewriteRelativeLinks(l.Footer, depth)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(header) + len(body) + len(footer) + 64)
	b.WriteString(`<div class="container">`)
	b.WriteString("<header>")
	b.WriteString(header)
	b.WriteString("</header>")
	b.WriteString(body)
	b.WriteString("<footer>")
	b.WriteString(footer)
	b.WriteString("</footer>")
	b.WriteString("</div>")
	return b.String(), nil
}

// AddHead turns body into a complete HTML document titled title.
func AddHead(body, title string, depth int) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">`)
	b.WriteString("<head>")
	b.WriteString(`<meta charset="UTF-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>")
	b.WriteString(`<link rel="stylesheet" href="`)
	b.WriteString(RelPrefix(depth))
	b.WriteString(StylesheetPath)
	b.WriteString(`">`)
	b.WriteString("</head>")
	b.WriteString("<body>")
	b.WriteString(body)
	b.WriteString("</body></html>\n")
	return b.String()
}

// AddTitleHeading prepends a level one heading.
func AddTitleHeading(body, title string) string {
	return "<h1>" + html.EscapeString(title) + "</h1>" + body
}

// AddDate prepends the publication date.
func AddDate(body string, date time.Time) string {
	return `<p class="date">` + post.FormatDate(date) + "</p>" + body
}
