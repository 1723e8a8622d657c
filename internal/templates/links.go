package templates

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// linkAttrs are the attributes that carry site links.
var linkAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// RewriteRelativeLinks rewrites every href and src in fragment that starts
// with "./" so it resolves from a page depth directories below the root.
// Depth 0 returns the fragment unchanged.
func RewriteRelativeLinks(fragment string, depth int) (string, error) {
	if depth <= 0 || !strings.Contains(fragment, "./") {
		return fragment, nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", fmt.Errorf("parse layout fragment: %w", err)
	}

	prefix := RelPrefix(depth)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for i, a := range n.Attr {
				if linkAttrs[a.Key] && strings.HasPrefix(a.Val, "./") {
					n.Attr[i].Val = prefix + strings.TrimPrefix(a.Val, "./")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	var b strings.Builder
	for _, n := range nodes {
		walk(n)
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render layout fragment: %w", err)
		}
	}
	return b.String(), nil
}
