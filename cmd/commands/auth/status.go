package auth

import (
	"errors"
	"fmt"

	"lighthouseservers/ptprov/internal/config"
	"lighthouseservers/ptprov/internal/services/auth"
	"lighthouseservers/ptprov/internal/util"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where the panel API key comes from",
		Long: `Show the configured panel URL and which API key a command would use.

Example:
  ptprov auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.OutOrStdout()

			if cfg.PanelURL == "" {
				fmt.Fprintln(out, "panel-url: not set")
			} else {
				fmt.Fprintf(out, "panel-url: %s\n", cfg.PanelURL)
			}

			if cfg.APIKey != "" {
				fmt.Fprintf(out, "api key: config file (%s)\n", util.MaskSecret(cfg.APIKey))
				return nil
			}

			token, err := auth.DefaultStore().GetToken(auth.PanelCredential)
			switch {
			case err == nil:
				fmt.Fprintf(out, "api key: keychain (%s)\n", util.MaskSecret(token))
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(out, "api key: not logged in")
			default:
				fmt.Fprintf(out, "api key: error (%v)\n", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
