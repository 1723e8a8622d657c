package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Field is a single ordered front matter entry.
type Field struct {
	Key   string
	Value any
}

// Encode serializes fields, in the given order, into YAML bytes without
// delimiters. Newlines follow style (default \n). No fields yields an empty slice.
func Encode(fields []Field, style Style) ([]byte, error) {
	if len(fields) == 0 {
		return []byte{}, nil
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		val, err := nodeFromAny(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", f.Key, err)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}, val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if nl := style.Newline; nl != "" && nl != "\n" {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte(nl))
	}
	return out, nil
}

// Compose builds a complete document from ordered fields and a Markdown body.
func Compose(fields []Field, body []byte, style Style) ([]byte, error) {
	raw, err := Encode(fields, style)
	if err != nil {
		return nil, err
	}
	return Document{Raw: raw, Body: body, Had: true, Style: style}.Bytes(), nil
}

func nodeFromAny(v any) (*yaml.Node, error) {
	switch vv := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: vv}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(vv)}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(vv)}, nil
	case time.Time:
		// Calendar dates stay in the unquoted YYYY-MM-DD form authors write by hand.
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: vv.Format(time.DateOnly)}, nil
	case []string:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range vv {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
		}
		return seq, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range vv {
			node, err := nodeFromAny(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, node)
		}
		return seq, nil
	default:
		var node yaml.Node
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return &node, nil
	}
}
