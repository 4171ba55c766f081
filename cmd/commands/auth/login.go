package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lighthouseservers/ptprov/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the panel API key",
		Long: `Store the panel application API key in the local keychain.

Without --token the key is read from the terminal without echo.

Example:
  ptprov auth login
  ptprov auth login --token ptla_...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				return err
			}

			token = strings.TrimSpace(token)
			if token == "" {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return fmt.Errorf("no terminal to read the API key from: pass --token")
				}
				fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				return errors.New("API key cannot be empty")
			}

			store := auth.DefaultStore()
			if err := store.SetToken(auth.PanelCredential, token); err != nil {
				return fmt.Errorf("failed to store API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Saved panel API key to the keychain.")
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "API key (optional, overrides prompt)")

	return cmd
}

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the panel API key from the keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := auth.DefaultStore().DeleteToken(auth.PanelCredential)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Removed panel API key from the keychain.")
				return nil
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No panel API key stored.")
				return nil
			default:
				return err
			}
		},
		SilenceUsage: true,
	}

	return cmd
}
