package post

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogbuilder/internal/frontmatter"
)

// DateLayout is the only accepted front matter date format.
const DateLayout = time.DateOnly

// Epoch is the date a post carries when its front matter has no date.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Metadata is the typed front matter of a post.
type Metadata struct {
	Title      string
	Date       time.Time
	Categories []string
	Summary    string
}

// DefaultMetadata returns the metadata of a post without front matter.
func DefaultMetadata() Metadata {
	return Metadata{Date: Epoch, Categories: []string{}}
}

// HasDate reports whether the date was set explicitly rather than left at Epoch.
func (m Metadata) HasDate() bool {
	return !m.Date.Equal(Epoch)
}

// FormattedDate renders the date as "D Month YYYY", e.g. "1 May 2023".
func (m Metadata) FormattedDate() string {
	return FormatDate(m.Date)
}

// FormatDate renders a calendar date as "D Month YYYY".
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// rawMetadata mirrors the recognized front matter keys; anything else is ignored.
type rawMetadata struct {
	Title      *string    `yaml:"title"`
	Date       *string    `yaml:"date"`
	Categories stringList `yaml:"categories"`
	Summary    *string    `yaml:"summary"`
}

// stringList accepts either a YAML sequence or a single scalar.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = stringList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: category must be a string", item.Line)
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: categories must be a list of strings", node.Line)
	}
}

// ParseMetadata splits a Markdown source into its metadata and body.
//
// A source without front matter yields DefaultMetadata and the full text as
// body. Malformed YAML and dates that are not YYYY-MM-DD are errors.
func ParseMetadata(content []byte) (Metadata, []byte, error) {
	meta := DefaultMetadata()

	doc, err := frontmatter.Split(content)
	if err != nil {
		return meta, nil, err
	}
	if !doc.Had {
		return meta, doc.Body, nil
	}

	var raw rawMetadata
	if err := doc.Decode(&raw); err != nil {
		return meta, nil, fmt.Errorf("parse front matter: %w", err)
	}

	if raw.Title != nil {
		meta.Title = *raw.Title
	}
	if raw.Date != nil {
		date, err := ParseDate(*raw.Date)
		if err != nil {
			return meta, nil, err
		}
		meta.Date = date
	}
	if raw.Categories != nil {
		meta.Categories = []string(raw.Categories)
	}
	if raw.Summary != nil {
		meta.Summary = *raw.Summary
	}
	return meta, doc.Body, nil
}

// ParseDate parses a YYYY-MM-DD calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Fields returns the metadata as ordered front matter fields. Empty optional
// fields are omitted; a date left at Epoch is omitted too.
func (m Metadata) Fields() []frontmatter.Field {
	fields := []frontmatter.Field{{Key: "title", Value: m.Title}}
	if m.HasDate() {
		fields = append(fields, frontmatter.Field{Key: "date", Value: m.Date})
	}
	if len(m.Categories) > 0 {
		fields = append(fields, frontmatter.Field{Key: "categories", Value: m.Categories})
	}
	if m.Summary != "" {
		fields = append(fields, frontmatter.Field{Key: "summary", Value: m.Summary})
	}
	return fields
}

// Marshal renders a complete Markdown source with this metadata as front matter.
func (m Metadata) Marshal(body []byte) ([]byte, error) {
	return frontmatter.Compose(m.Fields(), body, frontmatter.Style{Newline: "\n"})
}
