package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a YAML front matter block.
const Delimiter = "---"

// ErrMissingClosingDelimiter indicates the document started with a front
// matter delimiter but never closed the block.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

// Style captures the newline shape of a source document so it can be
// reassembled without churn.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Document is a Markdown source split into its front matter block and body.
type Document struct {
	// Raw is the YAML between the delimiters, without the delimiters.
	Raw []byte
	// Body is everything after the closing delimiter line.
	Body []byte
	// Had reports whether the source carried a front matter block at all.
	Had   bool
	Style Style
}

// Split separates `---` delimited YAML front matter from the Markdown body.
//
// A document that does not start with the delimiter has Had=false and the
// full input as Body; that is never an error.
func Split(content []byte) (Document, error) {
	style := detectStyle(content)
	doc := Document{Body: content, Style: style}

	nl := style.Newline
	open := []byte(Delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return doc, nil
	}

	start := len(open)
	closeLine := []byte(Delimiter + nl)
	if bytes.HasPrefix(content[start:], closeLine) {
		return Document{Raw: []byte{}, Body: content[start+len(closeLine):], Had: true, Style: style}, nil
	}

	closeSeq := []byte(nl + Delimiter + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter on the very last line has no trailing newline.
		tail := []byte(nl + Delimiter)
		if bytes.HasSuffix(content, tail) {
			end := len(content) - len(tail)
			return Document{Raw: content[start : end+len(nl)], Body: []byte{}, Had: true, Style: style}, nil
		}
		return Document{Style: style}, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return Document{
		Raw:   content[start:end],
		Body:  content[start+idx+len(closeSeq):],
		Had:   true,
		Style: style,
	}, nil
}

// Bytes reassembles the document. Without a front matter block the body is
// returned as-is.
func (d Document) Bytes() []byte {
	if !d.Had {
		return d.Body
	}

	nl := d.Style.Newline
	if nl == "" {
		nl = "\n"
	}
	delim := []byte(Delimiter + nl)

	out := make([]byte, 0, 2*len(delim)+len(d.Raw)+len(d.Body))
	out = append(out, delim...)
	out = append(out, d.Raw...)
	out = append(out, delim...)
	out = append(out, d.Body...)
	return out
}

// Decode unmarshals the front matter YAML into v. An empty block leaves v untouched.
func (d Document) Decode(v any) error {
	if len(bytes.TrimSpace(d.Raw)) == 0 {
		return nil
	}
	return yaml.Unmarshal(d.Raw, v)
}

func detectStyle(content []byte) Style {
	newline := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		newline = "\r\n"
	}

	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
