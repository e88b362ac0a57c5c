package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/output"
	"github.com/yuilib/yuigen/internal/scaffold"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user defaults",
		Long: fmt.Sprintf(`Read and write the defaults stored at ~/.yuigen/config.yaml.

Keys: %s

Every key can also be set through the environment, e.g. YUIGEN_AUTHOR.`, strings.Join(config.Keys, ", ")),
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigListCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := checkConfigValue(key, value); err != nil {
				return err
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			output.Debug("wrote config", "path", config.FilePath(), "key", key)
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every configuration value",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := config.All()
			for _, k := range config.SortedKeys(all) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, all[k])
			}
			return nil
		},
	}
}

// checkConfigValue rejects values the generators would refuse later.
func checkConfigValue(key, value string) error {
	switch key {
	case config.KeyModuleType:
		_, err := scaffold.ParseModuleType(value)
		return err
	case config.KeyYUIVersion:
		return scaffold.ValidateVersion(value)
	case config.KeyGitHubUser:
		return scaffold.ValidateGitHubUser(value)
	}
	return nil
}
