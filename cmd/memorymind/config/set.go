package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memorymindai/memorymind/pkg/config"
)

const setLongDesc string = `Set a configuration value.

Sets the given key to the provided value in the config file, creating
the file when it does not exist yet. Keys use dotted notation matching
the TOML section structure.

Examples:
  memorymind config set storage.driver sqlite
  memorymind config set genai.gemini_api_key AIza...
  memorymind config set memory.max_nodes_per_graph 500`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: setShortDesc,
		Long:  setLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runSet(args[0], args[1], configPath)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runSet(key, value, configPath string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}

	cfg, err := config.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := config.SetValue(cfg, key, value); err != nil {
		return err
	}

	if err := config.WriteFile(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("Set %s = %q\n", key, value)

	return nil
}
