// Package tokencmder provides the token command for issuing access tokens.
package tokencmder

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/memorymindai/memorymind/pkg/auth"
	"github.com/memorymindai/memorymind/pkg/config"
)

type tokenCommander struct {
	configPath string
	userID     string
	admin      bool
	ttl        time.Duration
}

const tokenLongDesc string = `Issue a signed access token for a user, using the jwt secret and issuer
from the service configuration. Useful for local development and scripts.`

const tokenShortDesc string = "Issue an access token for a user"

func NewTokenCmd() *cobra.Command {
	cmder := &tokenCommander{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: tokenShortDesc,
		Long:  tokenLongDesc,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to config.toml (default: working directory)")
	cmd.Flags().StringVarP(&cmder.userID, "user", "u", "", "User id the token is issued for")
	cmd.Flags().BoolVar(&cmder.admin, "admin", false, "Issue an administrative token")
	cmd.Flags().DurationVar(&cmder.ttl, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}

func (c *tokenCommander) run() error {
	if c.userID == "" {
		return errors.New("--user is required")
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must be set")
	}

	token, err := auth.Sign([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, c.userID, c.admin, c.ttl)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	fmt.Println(token)
	return nil
}
