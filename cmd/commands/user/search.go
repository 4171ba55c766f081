package user

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"lighthouseservers/ptprov/internal/domain"
	"lighthouseservers/ptprov/internal/panel"
	"lighthouseservers/ptprov/internal/provision"
	"lighthouseservers/ptprov/internal/services/auth"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func SearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find a user by email, username or last name",
		Long: `Find a user by email, username or last name.

The query must equal one of those fields exactly, ignoring case. The
provisioning flow only accepts a search that matches a single user; this
command shows what it would pick.

Examples:
  ptprov user search nova@example.com
  ptprov user search smith -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runSearch,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	log := *zerolog.Ctx(cmd.Context())
	p, err := panel.Open(auth.DefaultStore(), log)
	if err != nil {
		return err
	}

	users, err := p.ListUsers(cmd.Context())
	if err != nil {
		return err
	}
	matches := provision.MatchUsers(users, query)

	if output == "json" {
		if matches == nil {
			matches = []domain.User{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	switch len(matches) {
	case 0:
		fmt.Fprintf(cmd.OutOrStdout(), "No user found with the provided search input: %s\n", query)
		return nil
	case 1:
		fmt.Fprintf(cmd.OutOrStdout(), "User found with ID: %d\n", matches[0].ID)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Multiple users found. Please refine your search.")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tFIRST NAME\tLAST NAME")
	fmt.Fprintln(w, "--\t--------\t-----\t----------\t---------")
	for _, u := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.FirstName, u.LastName)
	}
	return w.Flush()
}
