package meta

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind selects which embedded schema a document is validated against.
type Kind string

const (
	// KindModule is meta/<name>.json, the loader metadata for a module.
	KindModule Kind = "meta"
	// KindComponent is docs/component.json, the docs site descriptor.
	KindComponent Kind = "component"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

var (
	schemas = map[Kind]func() (*jsonschema.Schema, error){
		KindModule:    sync.OnceValues(func() (*jsonschema.Schema, error) { return compile(KindModule) }),
		KindComponent: sync.OnceValues(func() (*jsonschema.Schema, error) { return compile(KindComponent) }),
	}
	printer = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/foo/requires/0")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// String renders the issue as "path: message", or just the message at the root.
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func compile(kind Kind) (*jsonschema.Schema, error) {
	name := string(kind) + ".schema.json"
	raw, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema %s: %w", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return schema, nil
}

// Validate checks JSON data against the schema for kind. The error return
// covers unreadable JSON and schema problems; a document that parses but
// breaks the schema comes back as a result with Issues.
func Validate(kind Kind, data []byte) (*ValidationResult, error) {
	load, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	schema, err := load()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating against %s schema: %w", kind, err)
	}
	return &ValidationResult{Issues: leafIssues(ve)}, nil
}

// ValidateFile reads path and validates it against the schema for kind.
func ValidateFile(kind Kind, path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Validate(kind, data)
}

// leafIssues flattens the error tree into its leaves, ordered by instance
// path with duplicates removed. allOf and $ref only wrap other errors and
// are skipped.
func leafIssues(root *jsonschema.ValidationError) []ValidationIssue {
	var out []ValidationIssue
	seen := make(map[ValidationIssue]bool)

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(ve.Causes) > 0 {
			stack = append(stack, ve.Causes...)
			continue
		}
		if ve.ErrorKind == nil {
			continue
		}

		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 || kw[len(kw)-1] == "allOf" || kw[len(kw)-1] == "$ref" {
			continue
		}
		issue := ValidationIssue{
			Message: ve.ErrorKind.LocalizedString(printer),
			Keyword: kw[len(kw)-1],
		}
		if len(ve.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		if !seen[issue] {
			seen[issue] = true
			out = append(out, issue)
		}
	}

	if len(out) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	slices.SortStableFunc(out, func(a, b ValidationIssue) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}
