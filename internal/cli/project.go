package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yuilib/yuigen/internal/branding"
	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/output"
	"github.com/yuilib/yuigen/internal/prompt"
	"github.com/yuilib/yuigen/internal/scaffold"
)

func newProjectCmd() *cobra.Command {
	var (
		preset prompt.ProjectAnswers
		gen    generateFlags
	)

	cmd := &cobra.Command{
		Use:     "project [dir]",
		Aliases: []string{"init"},
		Short:   "Scaffold a YUI component library project",
		Long: `Scaffold the project skeleton of a component library: BUILD.md, README.md,
Gruntfile.js, bower.json, package.json and the editor, git, JSHint and Yeti
configuration. The directory defaults to the current one.

Examples:
  yuigen project my-widgets
  yuigen project . --name my-widgets --author "Jane Doe" --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", dir, err)
			}

			defaults := config.Current()
			asker := prompt.NewAsker(cmd.InOrStdin(), cmd.OutOrStdout())
			asker.NonInteractive = gen.yes

			ans, err := asker.CollectProject(preset, filepath.Base(abs), defaults)
			if err != nil {
				return err
			}

			data := scaffold.NewProjectData(ans.Name)
			data.Description = ans.Description
			data.Author = ans.Author
			data.Version = ans.Version
			data.YUIVersion = ans.YUIVersion
			data.GitHubUser = defaults.GitHubUser
			if defaults.License != "" {
				data.License = defaults.License
			}

			result, err := scaffold.GenerateProject(data, gen.options(dir))
			if err != nil {
				return err
			}

			var steps []string
			if dir != "." {
				steps = append(steps, "cd "+dir)
			}
			steps = append(steps,
				"npm install",
				fmt.Sprintf("%s module <name> to add a module under src/", branding.CLIName()))

			output.WriteSummary(cmd.OutOrStdout(), output.Summary{
				Kind:      "project " + output.StyleNoun.Render(data.Name),
				OutputDir: result.OutputDir,
				Files:     result.Files,
				Warnings:  result.Warnings,
				NextSteps: steps,
				DryRun:    gen.dryRun,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&preset.Name, "name", "", "Package name (default: directory name)")
	cmd.Flags().StringVar(&preset.Description, "description", "", "Package description")
	cmd.Flags().StringVar(&preset.Author, "author", "", "Author (default: config author)")
	cmd.Flags().StringVar(&preset.Version, "version", "", "Initial version (default: "+scaffold.DefaultVersion+")")
	cmd.Flags().StringVar(&preset.YUIVersion, "yui-version", "", "YUI dependency version (default: config yui_version)")
	gen.register(cmd)

	return cmd
}
