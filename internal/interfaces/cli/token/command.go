package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/config"
)

var (
	env      string
	username string
	groups   []string
	ttl      time.Duration
)

// NewCommand mints a signed bearer token for local development and testing.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Long:  `Generate a signed JWT carrying the given username and groups, for use against a local server.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username claim (required)")
	cmd.Flags().StringSliceVarP(&groups, "groups", "g", nil, "Group claims, comma separated")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	cmd.MarkFlagRequired("username")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	signed, err := jwtService.Generate(username, groups, ttl)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
