package scaffold

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/yuilib/yuigen/internal/meta"
	"github.com/yuilib/yuigen/internal/output"
)

// renderedFile is one output file held in memory before anything is written.
type renderedFile struct {
	Path    string
	Content []byte
}

// GenerateModule renders the file set for data.Type into opts.OutputDir.
// When data.File is set, the existing source is split into js/<name>.js and
// meta/<name>.json instead of rendering those two templates.
func GenerateModule(data *ModuleData, opts Options) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	specs, err := FileSet(data.Type, data.Name)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: opts.OutputDir}

	var imported *Imported
	if data.File != "" {
		if data.Type == TypeCSS {
			return nil, fmt.Errorf("importing %s: css modules have no JavaScript source", data.File)
		}
		imported, err = ImportSource(data.File)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, imported.Warnings...)
		if imported.Name != "" && imported.Name != data.Name {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s declares module %q; generating %q", data.File, imported.Name, data.Name))
		}
	}

	output.Debug("generating module", "name", data.Name, "type", data.Type, "target", opts.OutputDir)

	jsPath := "js/" + data.Name + ".js"
	metaPath := "meta/" + data.Name + ".json"

	renderer := NewRenderer(data)
	files := make([]renderedFile, 0, len(specs))
	for _, spec := range specs {
		var content []byte
		switch {
		case imported != nil && spec.Path == jsPath:
			content = imported.Code
		case imported != nil && spec.Path == metaPath && imported.Config != nil:
			content, err = meta.EncodeModule(data.Name, imported.Config)
		default:
			content, err = renderer.RenderFile(spec.Template)
		}
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", spec.Path, err)
		}
		files = append(files, renderedFile{Path: spec.Path, Content: content})
	}

	result.Warnings = append(result.Warnings, validateMetadata(files, map[string]meta.Kind{
		metaPath:              meta.KindModule,
		"docs/component.json": meta.KindComponent,
	})...)

	if err := emit(files, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateProject renders the project scaffold into opts.OutputDir.
func GenerateProject(data *ProjectData, opts Options) (*Result, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	output.Debug("generating project", "name", data.Name, "target", opts.OutputDir)

	renderer := NewRenderer(data)
	specs := ProjectFileSet()
	files := make([]renderedFile, 0, len(specs))
	for _, spec := range specs {
		content, err := renderer.RenderFile(spec.Template)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", spec.Path, err)
		}
		files = append(files, renderedFile{Path: spec.Path, Content: content})
	}

	result := &Result{OutputDir: opts.OutputDir}
	if err := emit(files, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// emit records the file list and, unless this is a dry run, writes the files.
func emit(files []renderedFile, opts Options, result *Result) error {
	for _, f := range files {
		result.Files = append(result.Files, f.Path)
	}
	if opts.DryRun {
		return nil
	}

	if err := prepareOutputDir(opts); err != nil {
		return err
	}
	for _, f := range files {
		target := filepath.Join(opts.OutputDir, filepath.FromSlash(f.Path))
		if dir := path.Dir(f.Path); dir != "." {
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
			}
		}
		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		output.Debug("created file", "path", f.Path)
	}
	return nil
}

// prepareOutputDir creates the output directory and refuses a non-empty one
// unless Force is set.
func prepareOutputDir(opts Options) error {
	if opts.OutputDir == "" {
		return fmt.Errorf("output directory not set")
	}

	info, err := os.Stat(opts.OutputDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("checking output directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("%s is not a directory", opts.OutputDir)
	}

	entries, err := os.ReadDir(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("reading output directory: %w", err)
	}
	if len(entries) > 0 && !opts.Force {
		return fmt.Errorf("%w: %s; use --force to overwrite existing files", ErrNotEmpty, opts.OutputDir)
	}
	return nil
}

// validateMetadata checks generated JSON files against their schemas and
// turns problems into warnings.
func validateMetadata(files []renderedFile, kinds map[string]meta.Kind) []string {
	var warnings []string
	for _, f := range files {
		kind, ok := kinds[f.Path]
		if !ok {
			continue
		}
		res, err := meta.Validate(kind, f.Content)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", f.Path, err))
			continue
		}
		for _, issue := range res.Issues {
			warnings = append(warnings, f.Path+": "+issue.String())
		}
	}
	return warnings
}
