package prompt

import (
	"fmt"
	"strings"

	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/scaffold"
)

// ModuleAnswers are the answers that drive the module generator.
// Non-empty fields passed as presets are not asked again.
type ModuleAnswers struct {
	Name  string
	Title string
	Type  string
}

// ProjectAnswers are the answers that drive the project generator.
type ProjectAnswers struct {
	Name        string
	Description string
	Author      string
	Version     string
	YUIVersion  string
}

// CollectModule asks for the module name, title and type that preset does not
// already carry. The type menu defaults to the configured module type.
func (a *Asker) CollectModule(preset ModuleAnswers, defaults config.Defaults) (*ModuleAnswers, error) {
	ans := preset

	var err error
	if ans.Name == "" {
		ans.Name, err = a.Ask("Module name", "", scaffold.ValidateModuleName)
		if err != nil {
			return nil, err
		}
	} else if err := scaffold.ValidateModuleName(ans.Name); err != nil {
		return nil, err
	}

	if ans.Title == "" {
		ans.Title, err = a.Ask("Module title", scaffold.DefaultTitle(ans.Name), notBlank("module title"))
		if err != nil {
			return nil, err
		}
	}

	if ans.Type != "" {
		if _, err := scaffold.ParseModuleType(ans.Type); err != nil {
			return nil, err
		}
		return &ans, nil
	}

	items := make([]string, len(scaffold.ModuleTypes))
	def := 0
	for i, t := range scaffold.ModuleTypes {
		items[i] = string(t)
		if string(t) == defaults.ModuleType {
			def = i
		}
	}
	idx, err := a.Select("Module type:", items, def)
	if err != nil {
		return nil, err
	}
	ans.Type = items[idx]
	return &ans, nil
}

// CollectProject asks for the project values that preset does not already
// carry. defaultName is usually the base name of the output directory.
func (a *Asker) CollectProject(preset ProjectAnswers, defaultName string, defaults config.Defaults) (*ProjectAnswers, error) {
	ans := preset

	questions := []struct {
		field    *string
		question string
		def      func() string
		validate func(string) error
		optional bool
	}{
		{&ans.Name, "Project name", func() string { return defaultName }, scaffold.ValidateProjectName, false},
		{&ans.Description, "Description", func() string { return scaffold.NewProjectData(ans.Name).Description }, nil, false},
		{&ans.Author, "Author", func() string { return defaults.Author }, nil, true},
		{&ans.Version, "Version", func() string { return scaffold.DefaultVersion }, scaffold.ValidateVersion, false},
		{&ans.YUIVersion, "YUI version", func() string { return orDefault(defaults.YUIVersion, scaffold.DefaultYUIVersion) }, scaffold.ValidateVersion, false},
	}

	for _, q := range questions {
		if *q.field != "" {
			if q.validate != nil {
				if err := q.validate(*q.field); err != nil {
					return nil, err
				}
			}
			continue
		}
		def := q.def()

		var v string
		var err error
		switch {
		case q.optional && def == "" && a.NonInteractive:
			continue
		case q.optional && def == "":
			v, err = a.askOptional(q.question)
		default:
			v, err = a.Ask(q.question, def, q.validate)
		}
		if err != nil {
			return nil, err
		}
		*q.field = v
	}
	return &ans, nil
}

// askOptional asks a question whose empty answer is accepted.
func (a *Asker) askOptional(question string) (string, error) {
	fmt.Fprintf(a.w, "? %s: ", question)
	answer, err := a.readLine()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(question), err)
	}
	return answer, nil
}

func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
