package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_StandardMarkdown(t *testing.T) {
	r := NewRenderer()

	cases := []struct {
		name     string
		in       string
		contains []string
	}{
		{"heading", "# Hello", []string{"<h1>Hello</h1>"}},
		{"emphasis", "*a* and **b**", []string{"<em>a</em>", "<strong>b</strong>"}},
		{"link", "[home](./index.html)", []string{`<a href="./index.html">home</a>`}},
		{"list", "- one\n- two\n", []string{"<ul>", "<li>one</li>", "<li>two</li>"}},
		{"code block", "```go\nfmt.Println()\n```\n", []string{`<pre><code class="language-go">fmt.Println()`}},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |\n", []string{"<table>", "<td>1</td>"}},
		{"raw html passthrough", "<nav class=\"top\">menu</nav>\n", []string{`<nav class="top">menu</nav>`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := r.Render([]byte(tc.in))
			require.NoError(t, err)
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRender_HeadingIDs(t *testing.T) {
	out, err := NewRenderer(WithHeadingIDs()).Render([]byte("## Getting Started"))
	require.NoError(t, err)
	assert.Contains(t, out, `<h2 id="getting-started">Getting Started</h2>`)
}
