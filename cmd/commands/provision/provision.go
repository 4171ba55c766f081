package provision

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"lighthouseservers/ptprov/internal/auditlog"
	"lighthouseservers/ptprov/internal/panel"
	prov "lighthouseservers/ptprov/internal/provision"
	"lighthouseservers/ptprov/internal/services/auth"
	"lighthouseservers/ptprov/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "provision" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a game server interactively",
		Long: `Create a game server interactively.

The flow has four steps:
  1. Create a panel user, or search for an existing one by email,
     username or last name.
  2. Choose a node: Metis (1), Amalthea (2) or Adrastea (3).
  3. Claim the first two unassigned allocations on the node's address.
  4. Create a Barotrauma server for the user on those allocations.

Type 'exit' at the search or node prompt to stop without creating anything.
When stdin is not a terminal, answers are read one per line.

Examples:
  ptprov provision
  printf 'n\nnova@example.com\n2\n' | ptprov provision`,
		Args:         cobra.NoArgs,
		RunE:         Run,
		SilenceUsage: true,
	}

	return cmd
}

// Run executes one provisioning run. Stopping at a prompt, an invalid
// answer to the first question and a node without free allocations end the
// command successfully; panel and console failures are returned.
func Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := *zerolog.Ctx(ctx)

	p, err := panel.Open(auth.DefaultStore(), log)
	if err != nil {
		return err
	}

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)

	opts := []prov.Option{prov.WithLogger(log)}
	var prompter prov.Prompter
	if interactive {
		prompter = tui.NewFormPrompter()
		opts = append(opts, prov.WithActivity(tui.SpinnerActivity(cmd.ErrOrStderr())))
	} else {
		prompter = tui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	res, runErr := prov.New(p, prompter, cmd.OutOrStdout(), opts...).Run(ctx)
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditMetadata(res, runErr)))

	if runErr != nil {
		if prov.IsOutcome(runErr) {
			log.Debug().Err(runErr).Msg("provisioning stopped")
			return nil
		}
		return runErr
	}

	if interactive {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderResult(res))
	}
	return nil
}

// auditMetadata describes a (possibly partial) run for the audit trail.
func auditMetadata(res *prov.Result, err error) auditlog.Metadata {
	var meta auditlog.Metadata
	if res == nil {
		return meta
	}

	meta.Node = res.Node.Name
	switch {
	case res.Server != nil:
		meta.ResourceType = "server"
		meta.ResourceID = strconv.Itoa(res.Server.ID)
		meta.ResourceName = res.Server.Name
	case res.UserCreated:
		meta.ResourceType = "user"
		meta.ResourceID = strconv.Itoa(res.Identity.UserID)
		meta.ResourceName = res.Identity.FirstName
	}

	switch {
	case errors.Is(err, prov.ErrCancelled):
		meta.Outcome = auditlog.OutcomeCancelled
	case prov.IsOutcome(err):
		meta.Outcome = auditlog.OutcomeAborted
		meta.Detail = err.Error()
	}
	return meta
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
