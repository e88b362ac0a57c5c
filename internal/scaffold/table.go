package scaffold

import (
	"fmt"
	"strings"
)

// nameToken is replaced by the module name in output path patterns.
const nameToken = "{name}"

// FileSpec pairs an output path with the embedded template that renders it.
type FileSpec struct {
	Path     string // Output path relative to the output dir, slash-separated
	Template string // Path inside the embedded template FS
}

type entry struct {
	pattern  string
	template string
}

var (
	buildCSS     = entry{"build.json", "module/build-css.json.tmpl"}
	buildJS      = entry{"build.json", "module/build-js.json.tmpl"}
	component    = entry{"docs/component.json", "module/docs/component.json.tmpl"}
	docsIndex    = entry{"docs/index.mustache", "module/docs/index.mustache.tmpl"}
	history      = entry{"HISTORY.md", "module/HISTORY.md.tmpl"}
	readme       = entry{"README.md", "module/README.md.tmpl"}
	stylesheet   = entry{"css/{name}.css", "module/module.css.tmpl"}
	metaCSS      = entry{"meta/{name}.json", "module/meta-css.json.tmpl"}
	metaJS       = entry{"meta/{name}.json", "module/meta-js.json.tmpl"}
	metaWidget   = entry{"meta/{name}.json", "module/meta-widget.json.tmpl"}
	sourceJS     = entry{"js/{name}.js", "module/module-js.js.tmpl"}
	sourceWidget = entry{"js/{name}.js", "module/module-widget.js.tmpl"}
	testAsset    = entry{"tests/unit/assets/{name}-test.js", "module/tests/unit/assets/module-test.js.tmpl"}
	testPage     = entry{"tests/unit/{name}.html", "module/tests/unit/module.html.tmpl"}
	coreCSS      = entry{"assets/{name}/{name}-core.css", "module/assets/module-core.css.tmpl"}
	nightSkin    = entry{"assets/{name}/skins/night/{name}-skin.css", "module/assets/skins/night-skin.css.tmpl"}
	samSkin      = entry{"assets/{name}/skins/sam/{name}-skin.css", "module/assets/skins/sam-skin.css.tmpl"}
)

var moduleTable = map[ModuleType][]entry{
	TypeCSS: {
		buildCSS, component, docsIndex, history, stylesheet, metaCSS, readme,
	},
	TypeJS: {
		buildJS, component, docsIndex, history, sourceJS, metaJS, readme, testAsset, testPage,
	},
	TypeWidget: {
		coreCSS, nightSkin, samSkin,
		buildJS, component, docsIndex, history, sourceWidget, metaWidget, readme, testAsset, testPage,
	},
}

// projectTable is the fixed output set of the project generator. Dotfiles are
// stored without the leading dot so the embed pattern picks them up.
var projectTable = []entry{
	{"BUILD.md", "project/BUILD.md.tmpl"},
	{"README.md", "project/README.md.tmpl"},
	{"Gruntfile.js", "project/Gruntfile.js.tmpl"},
	{"bower.json", "project/bower.json.tmpl"},
	{"package.json", "project/package.json.tmpl"},
	{".editorconfig", "project/editorconfig.raw"},
	{".gitignore", "project/gitignore.raw"},
	{".jshintrc", "project/jshintrc.raw"},
	{".yeti.json", "project/yeti.json.raw"},
}

// FileSet returns the output files for a module of type t named name, in a
// fixed order.
func FileSet(t ModuleType, name string) ([]FileSpec, error) {
	entries, ok := moduleTable[t]
	if !ok {
		return nil, fmt.Errorf("%w %q: must be one of css, js, widget", ErrInvalidType, t)
	}
	if err := ValidateModuleName(name); err != nil {
		return nil, err
	}

	specs := make([]FileSpec, len(entries))
	for i, e := range entries {
		specs[i] = FileSpec{
			Path:     strings.ReplaceAll(e.pattern, nameToken, name),
			Template: e.template,
		}
	}
	return specs, nil
}

// ProjectFileSet returns the output files of the project generator.
func ProjectFileSet() []FileSpec {
	specs := make([]FileSpec, len(projectTable))
	for i, e := range projectTable {
		specs[i] = FileSpec{Path: e.pattern, Template: e.template}
	}
	return specs
}
