package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"unicode/utf8"
)

//go:embed templates
var templateFS embed.FS

// Template markers. Placeholders read <%= .Field %>; <%%= is the escape for
// a literal <%= in the output (Grunt uses the same syntax for its own
// templates).
const (
	leftDelim  = "<%="
	rightDelim = "%>"
	escapeMark = "<%%="
	rawSuffix  = ".raw"
)

// unresolvedPattern matches an escape or one of our placeholders that made it
// through rendering. Grunt's <%= pkg.x %> does not start with a dot and is left alone.
var unresolvedPattern = regexp.MustCompile(`<%%=|<%=\s*[.$]`)

var funcs = template.FuncMap{
	// json renders v as a JSON value, e.g. a quoted and escaped string.
	"json": func(v interface{}) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
	// rule returns ch repeated to the rune length of s, for markdown underlines.
	"rule": func(s, ch string) string {
		return strings.Repeat(ch, utf8.RuneCountInString(s))
	},
}

// Renderer renders embedded templates against a data record.
type Renderer struct {
	data interface{}
}

// NewRenderer creates a renderer for data (*ModuleData or *ProjectData).
func NewRenderer(data interface{}) *Renderer {
	return &Renderer{data: data}
}

// RenderFile reads the embedded template at path and renders it. Files with
// the .raw suffix are returned verbatim.
func (r *Renderer) RenderFile(path string) ([]byte, error) {
	content, err := fs.ReadFile(templateFS, "templates/"+path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	if strings.HasSuffix(path, rawSuffix) {
		return content, nil
	}
	return r.Render(path, content)
}

// Render executes content as a template named name. A placeholder naming a
// field the data record does not have is an error, never left as-is.
func (r *Renderer) Render(name string, content []byte) ([]byte, error) {
	src := strings.ReplaceAll(string(content), escapeMark, leftDelim+` "`+leftDelim+`" `+rightDelim)

	tmpl, err := template.New(name).
		Delims(leftDelim, rightDelim).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrUnresolvedPlaceholder, name, err)
	}

	out := buf.Bytes()
	if err := CheckResolved(name, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckResolved reports ErrUnresolvedPlaceholder if content still carries a
// placeholder or escape marker.
func CheckResolved(name string, content []byte) error {
	loc := unresolvedPattern.FindIndex(content)
	if loc == nil {
		return nil
	}
	line := bytes.Count(content[:loc[0]], []byte("\n")) + 1
	return fmt.Errorf("%w in %s at line %d", ErrUnresolvedPlaceholder, name, line)
}

// containsMarker reports whether a prompt value would look like template syntax.
func containsMarker(s string) bool {
	return strings.Contains(s, "<%")
}
