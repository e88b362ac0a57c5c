package scaffold

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/yuilib/yuigen/internal/meta"
)

// Imported is an existing module source split into the pieces a generated
// module keeps: the function body and the module config.
type Imported struct {
	Name     string       // Module name declared in YUI.add, empty when unwrapped
	Version  string       // Version argument of YUI.add, e.g. "@VERSION@"
	Code     []byte       // Content for js/<name>.js
	Config   *meta.Object // Module config, nil when undecodable
	Warnings []string
}

var addHeadPattern = regexp.MustCompile(`YUI\.add\(\s*(['"])([^'"]+)['"]\s*,\s*function\s*\(\s*Y\s*\)\s*\{`)

// ImportSource reads an existing YUI module file. The YUI.add wrapper is
// removed and everything inside the module function is kept byte for byte.
// A file without a recognizable wrapper is kept whole, with a warning.
func ImportSource(path string) (*Imported, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return splitSource(string(raw), path), nil
}

func splitSource(src, path string) *Imported {
	parsed, ok := parseAdd(src)
	if !ok {
		return &Imported{
			Code:     []byte(src),
			Warnings: []string{fmt.Sprintf("%s has no YUI.add() wrapper; copied verbatim", path)},
		}
	}

	imp := &Imported{
		Name:    parsed.name,
		Version: parsed.version,
		Code:    []byte(trimWrapper(parsed.body)),
	}

	if parsed.config == "" {
		imp.Config = meta.NewObject()
		return imp
	}
	cfg, err := meta.DecodeLiteral(parsed.config)
	if err != nil {
		imp.Warnings = append(imp.Warnings, fmt.Sprintf("%s: %v; using default module metadata", path, err))
		return imp
	}
	imp.Config = cfg
	return imp
}

type addCall struct {
	name    string
	version string
	body    string
	config  string
}

// parseAdd locates YUI.add('<name>', function (Y) { BODY }, '<version>', { CONFIG });
// The head is found with a regexp. The function's closing brace is found by
// scanning forward past strings, comments and regular expression literals;
// the version and config arguments after it are optional.
func parseAdd(src string) (*addCall, bool) {
	head := addHeadPattern.FindStringSubmatchIndex(src)
	if head == nil {
		return nil, false
	}
	call := &addCall{name: src[head[4]:head[5]]}
	openBrace := head[1] - 1

	closeBrace := matchClose(src, openBrace)
	if closeBrace < 0 {
		return nil, false
	}
	call.body = src[openBrace+1 : closeBrace]

	rest := strings.TrimLeftFunc(src[closeBrace+1:], unicode.IsSpace)
	if r, ok := cutComma(rest); ok {
		rest = r
		if rest != "" && (rest[0] == '\'' || rest[0] == '"') {
			end := skipQuoted(rest, 0)
			if end < 0 {
				return nil, false
			}
			call.version = rest[1:end]
			rest = strings.TrimLeftFunc(rest[end+1:], unicode.IsSpace)
			rest, _ = cutComma(rest)
		}
		if strings.HasPrefix(rest, "{") {
			end := matchClose(rest, 0)
			if end < 0 {
				return nil, false
			}
			call.config = rest[:end+1]
			rest = strings.TrimLeftFunc(rest[end+1:], unicode.IsSpace)
			rest, _ = cutComma(rest)
		}
	}
	if !strings.HasPrefix(rest, ")") {
		return nil, false
	}
	return call, true
}

func cutComma(s string) (string, bool) {
	if !strings.HasPrefix(s, ",") {
		return s, false
	}
	return strings.TrimLeftFunc(s[1:], unicode.IsSpace), true
}

// regexPrecedes lists the characters after which a '/' starts a regular
// expression literal rather than a division.
const regexPrecedes = "(,=:[!&|?{};+-*%<>~^"

// matchClose returns the index of the '}' closing the '{' at open. It returns
// -1 when the brace is never closed.
func matchClose(src string, open int) int {
	depth := 0
	prev := -1 // index of the last significant character
	for i := open; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		case c == '\'' || c == '"' || c == '`':
			if i = skipQuoted(src, i); i < 0 {
				return -1
			}
		case strings.HasPrefix(src[i:], "//"):
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return -1
			}
			i += nl
			continue
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return -1
			}
			i += end + 3
			continue
		case c == '/' && regexAllowed(src, prev):
			if i = skipRegex(src, i); i < 0 {
				return -1
			}
		case unicode.IsSpace(rune(c)):
			continue
		}
		prev = i
	}
	return -1
}

// regexAllowed reports whether a '/' following src[prev] opens a regular
// expression literal.
func regexAllowed(src string, prev int) bool {
	if prev < 0 {
		return true
	}
	if strings.IndexByte(regexPrecedes, src[prev]) >= 0 {
		return true
	}
	start := prev
	for start > 0 && isIdentByte(src[start-1]) {
		start--
	}
	switch src[start : prev+1] {
	case "return", "typeof", "case", "in", "of", "void", "delete":
		return true
	}
	return false
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// skipQuoted returns the index of the quote closing the string literal at
// start, or -1. Only template literals may span lines.
func skipQuoted(src string, start int) int {
	q := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case q:
			return i
		case '\n':
			if q != '`' {
				return -1
			}
		}
	}
	return -1
}

// skipRegex returns the index of the '/' closing the regular expression
// literal at start, or -1.
func skipRegex(src string, start int) int {
	inClass := false
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

// trimWrapper drops the newline that follows the function's opening brace and
// the indentation in front of its closing brace.
func trimWrapper(body string) string {
	switch {
	case strings.HasPrefix(body, "\r\n"):
		body = body[2:]
	case strings.HasPrefix(body, "\n"):
		body = body[1:]
	}
	if i := strings.LastIndexByte(body, '\n'); i >= 0 && strings.TrimLeft(body[i+1:], " \t") == "" {
		body = body[:i+1]
	}
	return body
}
