package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"go.yaml.in/yaml/v3"
)

// Object is a decoded module config. It keeps the keys in source order so the
// generated metadata reads like the literal it came from.
type Object struct {
	node *yaml.Node
}

// NewObject returns an empty config.
func NewObject() *Object {
	return &Object{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// Keys returns the top-level keys in source order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.node.Content)/2)
	for i := 0; i+1 < len(o.node.Content); i += 2 {
		keys = append(keys, o.node.Content[i].Value)
	}
	return keys
}

// Get decodes the value stored under key into JSON-compatible Go values.
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	for i := 0; i+1 < len(o.node.Content); i += 2 {
		if o.node.Content[i].Value != key {
			continue
		}
		var v interface{}
		if err := o.node.Content[i+1].Decode(&v); err != nil {
			return nil, false
		}
		return normalizeYAML(v), true
	}
	return nil, false
}

// MarshalJSON writes the object compactly with its keys in source order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, o.node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeLiteral decodes a JavaScript object literal such as
//
//	{ requires: ['node', 'base'], skinnable: true }
//
// The literal is rewritten into a YAML flow mapping first: strings are
// re-quoted as JSON strings with their JS escapes resolved, comments and
// trailing commas are dropped, and every separator gets a following space.
func DecodeLiteral(src string) (*Object, error) {
	src = strings.TrimSpace(src)
	if !strings.HasPrefix(src, "{") || !strings.HasSuffix(src, "}") {
		return nil, fmt.Errorf("module config is not an object literal")
	}

	flow, err := toFlowYAML(src)
	if err != nil {
		return nil, fmt.Errorf("decoding module config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(flow), &doc); err != nil {
		return nil, fmt.Errorf("decoding module config: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("module config is not an object literal")
	}

	obj := &Object{node: root}
	if _, err := obj.MarshalJSON(); err != nil {
		return nil, fmt.Errorf("decoding module config: %w", err)
	}
	return obj, nil
}

// EncodeModule renders meta/<name>.json content: {"<name>": cfg}, indented
// with four spaces and newline-terminated.
func EncodeModule(name string, cfg *Object) ([]byte, error) {
	body, err := cfg.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding module metadata: %w", err)
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	if err := writeValue(&compact, name); err != nil {
		return nil, fmt.Errorf("encoding module metadata: %w", err)
	}
	compact.WriteByte(':')
	compact.Write(body)
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "    "); err != nil {
		return nil, fmt.Errorf("encoding module metadata: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeJSON emits n as compact JSON, mappings in document order.
func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: object key must be a name or a string", key.Line)
			}
			if err := writeValue(buf, key.Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return err
		}
		return writeValue(buf, v)
	}
}

func writeValue(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// toFlowYAML rewrites a JS object literal into YAML flow syntax.
func toFlowYAML(src string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			s, end, err := unquoteJS(src, i)
			if err != nil {
				return "", err
			}
			if err := writeQuoted(&b, s); err != nil {
				return "", err
			}
			i = end
		case c == '/' && strings.HasPrefix(src[i:], "//"):
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return b.String(), nil
			}
			i += nl - 1
		case c == '/' && strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return "", fmt.Errorf("unterminated comment")
			}
			b.WriteByte(' ')
			i += end + 3
		case c == ',':
			j := i + 1
			for j < len(src) && strings.IndexByte(" \t\r\n", src[j]) >= 0 {
				j++
			}
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				continue
			}
			b.WriteString(", ")
		case c == ':':
			b.WriteString(": ")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func writeQuoted(b *strings.Builder, s string) error {
	q, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(q)
	return nil
}

// unquoteJS reads the JS string literal starting at src[start] and returns its
// value and the index of the closing quote.
func unquoteJS(src string, start int) (string, int, error) {
	q := src[start]
	var b strings.Builder
	for i := start + 1; i < len(src); i++ {
		c := src[i]
		switch c {
		case q:
			return b.String(), i, nil
		case '\n':
			return "", 0, fmt.Errorf("unterminated string literal")
		case '\\':
			i++
			if i >= len(src) {
				return "", 0, fmt.Errorf("unterminated string literal")
			}
			switch e := src[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'v':
				b.WriteByte('\v')
			case '0':
				b.WriteByte(0)
			case '\n':
				// line continuation
			case 'x', 'u':
				width := 2
				if e == 'u' {
					width = 4
				}
				r, err := hexRune(src, i+1, width)
				if err != nil {
					return "", 0, err
				}
				i += width
				if utf16.IsSurrogate(r) && strings.HasPrefix(src[i+1:], `\u`) {
					if lo, err := hexRune(src, i+3, 4); err == nil {
						if pair := utf16.DecodeRune(r, lo); pair != unicode.ReplacementChar {
							r = pair
							i += 6
						}
					}
				}
				b.WriteRune(r)
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

func hexRune(src string, at, width int) (rune, error) {
	if at+width > len(src) {
		return 0, fmt.Errorf("truncated escape sequence")
	}
	n, err := strconv.ParseUint(src[at:at+width], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid escape sequence %q", src[at:at+width])
	}
	return rune(n), nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible types.
// Mappings with non-string keys are re-keyed with their fmt representation.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
