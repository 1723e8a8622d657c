// Package templates composes site pages from the shared layout files: the
// Markdown header and footer and the raw HTML home page template.
package templates

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Layout file names, relative to the input directory.
const (
	HeaderFile = "header.md"
	FooterFile = "footer.md"
	IndexFile  = "index.html"
)

// Renderer converts Markdown to HTML.
type Renderer interface {
	Render(src []byte) (string, error)
}

// Layout holds the rendered site chrome shared by every page.
type Layout struct {
	Header string
	Footer string
	// Index is the raw home page template.
	Index string
}

// Load reads the layout files under root. A missing file is a not-found
// error naming that file.
func Load(root string, r Renderer) (*Layout, error) {
	header, err := renderFile(root, HeaderFile, r)
	if err != nil {
		return nil, err
	}
	footer, err := renderFile(root, FooterFile, r)
	if err != nil {
		return nil, err
	}
	index, err := readFile(root, IndexFile)
	if err != nil {
		return nil, err
	}
	return &Layout{Header: header, Footer: footer, Index: string(index)}, nil
}

func renderFile(root, name string, r Renderer) (string, error) {
	src, err := readFile(root, name)
	if err != nil {
		return "", err
	}
	out, err := r.Render(src)
	if err != nil {
		return "", errors.ContentError("failed to render layout file").
			WithCause(err).
			WithContext("file", name).
			Build()
	}
	return strings.TrimSpace(out), nil
}

func readFile(root, name string) ([]byte, error) {
	path := filepath.Join(root, name)
	data, err := os.ReadFile(filepath.Clean(path))
	if err == nil {
		return data, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFoundError("required site file is missing").
			WithCause(err).
			WithContext("file", name).
			WithContext("path", path).
			Build()
	}
	return nil, errors.FileSystemError("failed to read site file").
		WithCause(err).
		WithContext("file", name).
		Build()
}
