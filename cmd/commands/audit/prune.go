package audit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"lighthouseservers/ptprov/internal/auditlog"

	"github.com/spf13/cobra"
)

func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than a duration",
		Long: `Delete audit entries older than a duration.

Durations accept Go syntax (72h, 90m) plus days (30d) and weeks (4w).

Examples:
  ptprov audit prune --older-than 30d
  ptprov audit prune --older-than 4w --dry-run`,
		Args:         cobra.NoArgs,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")
	cmd.Flags().Bool("dry-run", false, "Only report how many entries would be removed")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("--older-than is required")
	}

	olderThan, err := parseDuration(raw)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	if dryRun {
		n, err := repo.CountOlderThan(olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Would remove %d audit entr(y/ies) older than %s.\n", n, raw)
		return nil
	}

	removed, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d audit entr(y/ies).\n", removed)
	return nil
}

// dayUnits are the suffixes time.ParseDuration does not know.
var dayUnits = map[string]time.Duration{
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

func parseDuration(input string) (time.Duration, error) {
	for suffix, unit := range dayUnits {
		num, ok := strings.CutSuffix(input, suffix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		if n < 0 {
			return 0, fmt.Errorf("duration must be positive")
		}
		if int64(n) > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("duration %q is too large", input)
		}
		d := time.Duration(n) * unit
		if d <= 0 {
			return 0, fmt.Errorf("duration must be positive")
		}
		return d, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
