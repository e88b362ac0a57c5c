package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/scaffold"
)

func newFilesCmd() *cobra.Command {
	var (
		typ       string
		templates bool
	)

	cmd := &cobra.Command{
		Use:   "files <name>",
		Short: "List the files a module would get",
		Long: `Print the output paths of a module of the given type, one per line.

Examples:
  yuigen files bar --type js
  yuigen files carousel --type widget --templates`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if typ == "" {
				typ = config.Current().ModuleType
			}
			moduleType, err := scaffold.ParseModuleType(typ)
			if err != nil {
				return err
			}
			specs, err := scaffold.FileSet(moduleType, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, s := range specs {
				if templates {
					fmt.Fprintf(w, "%-48s %s\n", s.Path, s.Template)
					continue
				}
				fmt.Fprintln(w, s.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", fmt.Sprintf("Module type (%s; default: config module_type)", typeList()))
	cmd.Flags().BoolVar(&templates, "templates", false, "Also print the template each file renders from")
	return cmd
}
