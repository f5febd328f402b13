package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memorymindai/memorymind/pkg/config"
)

const listLongDesc string = `List all configuration values.

Displays every configuration key with its effective value: the config
file value where set, the built-in default otherwise.

Examples:
  memorymind config list`

const listShortDesc string = "List all configuration values"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runList(configPath)
		},
	}

	return cmd
}

func runList(configPath string) error {
	cfg, err := config.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	keys := config.ValidConfigKeys()

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range keys {
		if len(k) > maxLen {
			maxLen = len(k)
		}
	}

	for _, key := range keys {
		value, err := config.GetValue(cfg, key)
		if err != nil {
			return err
		}

		if value == "" {
			fmt.Printf("%-*s = <not set>\n", maxLen, key)
		} else {
			fmt.Printf("%-*s = %q\n", maxLen, key, value)
		}
	}

	return nil
}
