package main

import (
	"errors"
	"fmt"
	"time"

	"lendhub-backend/internal/adapter/middleware"
	"lendhub-backend/internal/config"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

// tokenCmd mints an admin bearer token signed with JWT_SECRET, for local
// testing and service accounts.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed admin bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenSubject == "" {
			return errors.New("--sub is required")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		tok, err := middleware.IssueToken([]byte(cfg.JWTSecret), cfg.JWTIssuer, tokenSubject, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "", "actor id recorded on lead activities")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "token lifetime")
}
