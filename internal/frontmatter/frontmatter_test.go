package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	doc, err := Split(input)
	require.NoError(t, err)
	require.False(t, doc.Had)
	require.Empty(t, doc.Raw)
	require.Equal(t, input, doc.Body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\n# Title\n")

	doc, err := Split(input)
	require.NoError(t, err)
	require.True(t, doc.Had)
	require.Equal(t, []byte("title: Hello\n"), doc.Raw)
	require.Equal(t, []byte("# Title\n"), doc.Body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, err := Split([]byte("---\ntitle: Hello\n# Title\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	doc, err := Split([]byte("---\ntitle: Hello\n---"))
	require.NoError(t, err)
	require.True(t, doc.Had)
	require.Equal(t, []byte("title: Hello\n"), doc.Raw)
	require.Empty(t, doc.Body)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	doc, err := Split([]byte("---\r\ntitle: Hello\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, doc.Had)
	require.Equal(t, "\r\n", doc.Style.Newline)
	require.Equal(t, []byte("title: Hello\r\n"), doc.Raw)
	require.Equal(t, []byte("# Title\r\n"), doc.Body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	doc, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, doc.Had)
	require.Empty(t, doc.Raw)
	require.Equal(t, []byte("# Title\n"), doc.Body)
}

func TestSplit_HorizontalRuleLaterInBodyIsNotFrontmatter(t *testing.T) {
	input := []byte("intro\n---\nmore\n")

	doc, err := Split(input)
	require.NoError(t, err)
	require.False(t, doc.Had)
	require.Equal(t, input, doc.Body)
}

func TestBytes_RoundTrip_ReconstructsOriginal(t *testing.T) {
	cases := [][]byte{
		[]byte("# Title\n\nHello\n"),
		[]byte("---\ntitle: Hello\n---\n# Title\n"),
		[]byte("---\n---\n# Title\n"),
		[]byte("---\r\ntitle: Hello\r\n---\r\n# Title\r\n"),
	}

	for _, input := range cases {
		doc, err := Split(input)
		require.NoError(t, err)
		require.Equal(t, input, doc.Bytes())
	}
}

func TestDecode(t *testing.T) {
	var out struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}

	doc, err := Split([]byte("---\ntitle: Hello\ntags:\n  - one\nextra: ignored\n---\nbody\n"))
	require.NoError(t, err)
	require.NoError(t, doc.Decode(&out))
	require.Equal(t, "Hello", out.Title)
	require.Equal(t, []string{"one"}, out.Tags)
}

func TestDecode_EmptyBlockLeavesTargetUntouched(t *testing.T) {
	out := struct {
		Title string `yaml:"title"`
	}{Title: "keep"}

	doc, err := Split([]byte("---\n---\nbody\n"))
	require.NoError(t, err)
	require.NoError(t, doc.Decode(&out))
	require.Equal(t, "keep", out.Title)
}

func TestDecode_InvalidYAML_ReturnsError(t *testing.T) {
	doc, err := Split([]byte("---\n: not yaml\n  - [\n---\nbody\n"))
	require.NoError(t, err)

	var out map[string]any
	require.Error(t, doc.Decode(&out))
}
