package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

var errNoSecret = errors.New("JWT_SECRET is not set")

// subtitle mirrors the result list of the launcher plugin this tool replaces.
func subtitle(p model.Password) string {
	if p.Style == model.StylePronounceable {
		return "Pronounceable password (xxxxxx-xxxxxx-xxxxxx)"
	}
	return fmt.Sprintf("Standard password (%d characters long)", len(p.Password))
}

func newRootCmd(cfg config.Config, gen *crypto.Generator) *cobra.Command {
	var (
		styles []string
		hash   bool
	)

	svc := service.NewGeneratorService(gen, cfg.DefaultLength)

	rootCmd := &cobra.Command{
		Use:   "pwgen [length]",
		Short: "Generate a standard and a pronounceable password",
		Long: fmt.Sprintf(`Generate passwords from a cryptographically secure source.

The first argument is the length of the standard password (default %d,
maximum %d). An argument that is not a number is ignored.`, cfg.DefaultLength, crypto.MaxLength),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.GenerateRequest{
				Length: service.ParseLength(strings.Join(args, " ")),
				Hash:   hash,
			}
			for _, s := range styles {
				req.Styles = append(req.Styles, model.Style(s))
			}

			resp, err := svc.Generate(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range resp.Passwords {
				fmt.Fprintln(out, p.Password)
				fmt.Fprintf(out, "  %s\n", subtitle(p))
				if p.Hash != "" {
					fmt.Fprintf(out, "  %s\n", p.Hash)
				}
			}
			return nil
		},
	}

	rootCmd.Flags().StringSliceVarP(&styles, "style", "s", nil, "Password styles to generate: standard, pronounceable (default both)")
	rootCmd.Flags().BoolVar(&hash, "hash", false, "Also print the argon2id hash of each password")

	rootCmd.AddCommand(newTokenCmd(cfg))
	return rootCmd
}

func newTokenCmd(cfg config.Config) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the generate API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.AuthEnabled() {
				return errNoSecret
			}
			token, err := crypto.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	tokenCmd.Flags().StringVar(&subject, "subject", "", "Name of the client the token is issued to (required)")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", cfg.JWTExpiry, "Token lifetime")
	tokenCmd.MarkFlagRequired("subject")

	return tokenCmd
}
