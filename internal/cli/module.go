package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/output"
	"github.com/yuilib/yuigen/internal/prompt"
	"github.com/yuilib/yuigen/internal/scaffold"
)

// generateFlags are shared by the module and project commands.
type generateFlags struct {
	force  bool
	dryRun bool
	yes    bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.force, "force", false, "Write into a non-empty directory, overwriting files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "List the files that would be created without writing them")
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Accept defaults instead of asking")
}

func (f *generateFlags) options(dir string) scaffold.Options {
	return scaffold.Options{OutputDir: dir, Force: f.force, DryRun: f.dryRun}
}

func newModuleCmd() *cobra.Command {
	var (
		title     string
		typ       string
		file      string
		outputDir string
		gen       generateFlags
	)

	cmd := &cobra.Command{
		Use:     "module [name]",
		Aliases: []string{"mod"},
		Short:   "Scaffold a new YUI module",
		Long: `Scaffold a css, js or widget module with its build file, metadata,
docs stubs and unit test harness. Values not given as flags are asked for.

Inside a project (a directory with src/), the module is created in
src/<name>; otherwise in ./<name>.

Examples:
  yuigen module image-cropper --type widget
  yuigen module carousel --title "Carousel" --type js --file ./legacy/carousel.js
  yuigen module reset --type css --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := prompt.ModuleAnswers{Title: title, Type: typ}
			if len(args) == 1 {
				preset.Name = args[0]
			}

			defaults := config.Current()
			asker := prompt.NewAsker(cmd.InOrStdin(), cmd.OutOrStdout())
			asker.NonInteractive = gen.yes

			ans, err := asker.CollectModule(preset, defaults)
			if err != nil {
				return err
			}
			moduleType, err := scaffold.ParseModuleType(ans.Type)
			if err != nil {
				return err
			}

			data := scaffold.NewModuleData(ans.Name, ans.Title, moduleType)
			data.File = file
			data.Author = defaults.Author

			dir := outputDir
			if dir == "" {
				dir = defaultModuleDir(ans.Name)
			}

			result, err := scaffold.GenerateModule(data, gen.options(dir))
			if err != nil {
				return err
			}

			output.WriteSummary(cmd.OutOrStdout(), output.Summary{
				Kind:      fmt.Sprintf("%s module %s", moduleType, output.StyleNoun.Render(ans.Name)),
				OutputDir: result.OutputDir,
				Files:     result.Files,
				Warnings:  result.Warnings,
				NextSteps: moduleNextSteps(data),
				DryRun:    gen.dryRun,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Display title (default: derived from the name)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", fmt.Sprintf("Module type (%s)", typeList()))
	cmd.Flags().StringVar(&file, "file", "", "Existing YUI.add() source to import into js/<name>.js")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: src/<name> or ./<name>)")
	gen.register(cmd)

	return cmd
}

// defaultModuleDir places a module under src/ when run from a project root.
func defaultModuleDir(name string) string {
	if info, err := os.Stat("src"); err == nil && info.IsDir() {
		return filepath.Join("src", name)
	}
	return name
}

func moduleNextSteps(data *scaffold.ModuleData) []string {
	var steps []string
	switch data.Type {
	case scaffold.TypeCSS:
		steps = append(steps, fmt.Sprintf("Style css/%s.css", data.Name))
	case scaffold.TypeWidget:
		steps = append(steps,
			fmt.Sprintf("Implement the widget in js/%s.js", data.Name),
			fmt.Sprintf("Style the skins under assets/%s/skins/", data.Name))
	default:
		steps = append(steps, fmt.Sprintf("Implement the module in js/%s.js", data.Name))
	}
	if data.Type != scaffold.TypeCSS {
		steps = append(steps, fmt.Sprintf("Add tests to tests/unit/assets/%s-test.js", data.Name))
	}
	return append(steps, "Run `grunt build` from the project root")
}

func typeList() string {
	names := make([]string, len(scaffold.ModuleTypes))
	for i, t := range scaffold.ModuleTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
