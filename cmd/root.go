package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"lighthouseservers/ptprov/cmd/commands/allocations"
	"lighthouseservers/ptprov/cmd/commands/audit"
	"lighthouseservers/ptprov/cmd/commands/auth"
	cfgcmd "lighthouseservers/ptprov/cmd/commands/config"
	"lighthouseservers/ptprov/cmd/commands/provision"
	"lighthouseservers/ptprov/cmd/commands/user"
	"lighthouseservers/ptprov/internal/auditlog"
	"lighthouseservers/ptprov/internal/config"
	"lighthouseservers/ptprov/internal/database"
	"lighthouseservers/ptprov/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Without a subcommand it runs the
// interactive provisioning flow.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "ptprov",
		Short: "Provision game servers on a Pterodactyl panel",
		Long: `ptprov provisions game servers through a Pterodactyl panel's application API.

A run creates a panel user (or finds an existing one), asks which node to
use, claims the first two free allocations on that node and creates a
Barotrauma server bound to them.

Quick start:
  ptprov config set panel-url https://panel.example.com
  ptprov auth login                # Store your application API key
  ptprov                           # Interactive provisioning
  ptprov allocations               # Free allocations on every node`,
		Args:              cobra.NoArgs,
		RunE:              provision.Run,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String("config", "", "Path to the config file (default: <user config dir>/ptprov/config.json)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log panel requests and other diagnostics to stderr")

	cmd.AddCommand(provision.NewCommand())
	cmd.AddCommand(user.NewCommand())
	cmd.AddCommand(allocations.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// setup applies the persistent flags before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("config"); strings.TrimSpace(path) != "" {
		path = strings.TrimSpace(path)
		config.SetPath(path)
		database.SetPath(filepath.Join(filepath.Dir(path), "ptprov.db"))
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(cmd.ErrOrStderr(), verbose)
	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

// Execute runs the root command and records the invocation in the audit
// trail. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := rootCmd()
	started := time.Now()
	executed, err := root.ExecuteContextC(ctx)

	if shouldAudit(executed) {
		auditlog.Record(auditlog.Invocation{
			RunID:    auditlog.NewRunID(),
			Command:  executed.CommandPath(),
			Args:     os.Args[1:],
			Started:  started,
			Finished: time.Now(),
			Err:      err,
			Meta:     auditlog.MetadataFromContext(executed.Context()),
		})
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}

// shouldAudit reports whether an invocation of cmd is worth recording.
// Help output and the audit commands themselves are skipped.
func shouldAudit(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "audit", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
