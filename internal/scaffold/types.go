package scaffold

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrInvalidType           = errors.New("invalid module type")
	ErrNotEmpty              = errors.New("output directory is not empty")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
)

// ModuleType selects the output file set for a module.
type ModuleType string

const (
	TypeCSS    ModuleType = "css"
	TypeJS     ModuleType = "js"
	TypeWidget ModuleType = "widget"
)

// ModuleTypes lists the valid module types in menu order.
var ModuleTypes = []ModuleType{TypeCSS, TypeJS, TypeWidget}

// ParseModuleType converts s into a ModuleType. Matching is case-sensitive.
func ParseModuleType(s string) (ModuleType, error) {
	for _, t := range ModuleTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of css, js, widget", ErrInvalidType, s)
}

// ModuleData holds every value a module template can reference.
type ModuleData struct {
	Name        string     // e.g., "image-cropper"
	Title       string     // e.g., "Image Cropper"
	Type        ModuleType // css, js or widget
	File        string     // Existing source to import (optional)
	Description string     // Derived: "The <Title> module."
	Namespace   string     // Derived: Title without non-identifier runes, "ImageCropper"
	Author      string     // From user config, may be empty
}

// Authors returns the author list for docs/component.json; never nil.
func (d *ModuleData) Authors() []string {
	if d.Author == "" {
		return []string{}
	}
	return []string{d.Author}
}

// NewModuleData creates a ModuleData with derived fields populated.
func NewModuleData(name, title string, typ ModuleType) *ModuleData {
	if title == "" {
		title = DefaultTitle(name)
	}
	return &ModuleData{
		Name:        name,
		Title:       title,
		Type:        typ,
		Description: fmt.Sprintf("The %s module.", title),
		Namespace:   namespaceFor(title),
	}
}

// Validate checks the values that flow into file names and templates.
func (d *ModuleData) Validate() error {
	if err := ValidateModuleName(d.Name); err != nil {
		return err
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("module title cannot be empty")
	}
	if _, err := ParseModuleType(string(d.Type)); err != nil {
		return err
	}
	for field, v := range map[string]string{"title": d.Title, "author": d.Author, "description": d.Description} {
		if containsMarker(v) {
			return fmt.Errorf("module %s %q must not contain a placeholder marker", field, v)
		}
	}
	return nil
}

// ProjectData holds every value a project template can reference.
type ProjectData struct {
	Name        string
	Description string
	Author      string
	Version     string
	YUIVersion  string
	License     string
	GitHubUser  string
	Year        int
}

// Project defaults.
const (
	DefaultVersion    = "0.0.0"
	DefaultYUIVersion = "3.18.1"
	DefaultLicense    = "BSD-3-Clause"
)

// NewProjectData creates a ProjectData with defaults populated.
func NewProjectData(name string) *ProjectData {
	return &ProjectData{
		Name:        name,
		Description: fmt.Sprintf("%s component library.", DefaultTitle(name)),
		Version:     DefaultVersion,
		YUIVersion:  DefaultYUIVersion,
		License:     DefaultLicense,
		Year:        time.Now().Year(),
	}
}

// Validate checks the project values.
func (d *ProjectData) Validate() error {
	if err := ValidateProjectName(d.Name); err != nil {
		return err
	}
	if err := ValidateVersion(d.Version); err != nil {
		return fmt.Errorf("invalid project version: %w", err)
	}
	if err := ValidateVersion(d.YUIVersion); err != nil {
		return fmt.Errorf("invalid YUI version: %w", err)
	}
	if d.GitHubUser != "" {
		if err := ValidateGitHubUser(d.GitHubUser); err != nil {
			return err
		}
	}
	for field, v := range map[string]string{"description": d.Description, "author": d.Author, "license": d.License} {
		if containsMarker(v) {
			return fmt.Errorf("project %s %q must not contain a placeholder marker", field, v)
		}
	}
	return nil
}

// Options controls how a generator writes its output.
type Options struct {
	OutputDir string
	Force     bool // Write into a non-empty directory, overwriting files
	DryRun    bool // Compute the file set without touching the filesystem
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// DefaultTitle derives a display title from a module or project name:
// "image-cropper" becomes "Image Cropper".
func DefaultTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// namespaceFor strips everything but letters and digits from title.
func namespaceFor(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	ns := b.String()
	if ns == "" || unicode.IsDigit(rune(ns[0])) {
		ns = "_" + ns
	}
	return ns
}
