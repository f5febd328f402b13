// Package configcmder provides the config command for inspecting and
// editing the memorymind config.toml.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage memorymind configuration.

Configuration is stored as a config.toml file. Keys use dotted notation
matching the TOML section structure:
  api.listen,
  auth.jwt_secret, auth.issuer,
  storage.driver, storage.sqlite_path,
  memory.max_nodes_per_graph,
  genai.provider, genai.gemini_api_key, genai.gemini_model,
  genai.openai_api_key, genai.openai_base_url, genai.openai_model,
  genai.anthropic_api_key, genai.anthropic_model,
  rates.query_base_cost, rates.storage_cost_per_byte

Use subcommands to get, set, or list configuration values:
  memorymind config set <key> <value>    Set a configuration value
  memorymind config get <key>            Get a configuration value
  memorymind config list                 List all configuration values

Examples:
  memorymind config set storage.driver sqlite
  memorymind config set genai.provider anthropic
  memorymind config get api.listen
  memorymind config list`

const configShortDesc string = "Manage memorymind configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.PersistentFlags().StringP("config", "c", "config.toml", "Path to the config file")

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
