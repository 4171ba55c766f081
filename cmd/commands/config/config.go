package config

import (
	"lighthouseservers/ptprov/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ptprov configuration",
		Long: "View and modify persistent ptprov settings.\n\n" +
			"Configuration is stored at ~/.config/ptprov/config.json unless --config is given.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
