package user

import "github.com/spf13/cobra"

// NewCommand returns the "user" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up panel users",
	}

	cmd.AddCommand(SearchCommand())

	return cmd
}
