// Package memorymindcmder
package memorymindcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/memorymindai/memorymind/cmd/memorymind/config"
	servecmder "github.com/memorymindai/memorymind/cmd/memorymind/serve"
	tokencmder "github.com/memorymindai/memorymind/cmd/memorymind/token"
	versioncmder "github.com/memorymindai/memorymind/cmd/version"
)

const memorymindLongDesc string = `Memorymind is a personal AI assistant that builds a knowledge graph
about each user from their conversations.

Run services using:
  memorymind serve     Run the API server
  memorymind config    Manage memorymind configuration
  memorymind token     Issue an access token for a user`

const memorymindShortDesc string = "Memorymind - Personal Knowledge Graph Assistant"

func NewMemorymindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memorymind",
		Short: memorymindShortDesc,
		Long:  memorymindLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(tokencmder.NewTokenCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
