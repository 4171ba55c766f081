package allocations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"lighthouseservers/ptprov/internal/domain"
	"lighthouseservers/ptprov/internal/panel"
	"lighthouseservers/ptprov/internal/provision"
	"lighthouseservers/ptprov/internal/services/auth"
	"lighthouseservers/ptprov/internal/tui/styles"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCommand returns the "allocations" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocations",
		Short: "List unassigned allocations per node",
		Long: `List the unassigned allocations on each node's address, and the pair
the provisioning flow would claim next.

Without --node all three nodes are queried in parallel.

Examples:
  ptprov allocations
  ptprov allocations --node amalthea
  ptprov allocations --node 3 -o json`,
		Args:         cobra.NoArgs,
		RunE:         runAllocations,
		SilenceUsage: true,
	}

	cmd.Flags().String("node", "", "Node name or ID (default: all nodes)")
	cmd.Flags().Bool("all", false, "Include allocations that are already assigned")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

// nodeAllocations is the listing for one node.
type nodeAllocations struct {
	Node        domain.Node            `json:"node"`
	Allocations []domain.Allocation    `json:"allocations"`
	NextPair    *domain.AllocationPair `json:"next_pair,omitempty"`
}

func runAllocations(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}
	includeAssigned, _ := cmd.Flags().GetBool("all")

	nodes := domain.Nodes
	if raw, _ := cmd.Flags().GetString("node"); strings.TrimSpace(raw) != "" {
		node, ok := domain.ParseNode(raw)
		if !ok {
			return fmt.Errorf("unknown node %q (valid: %s)", raw, nodeNames())
		}
		nodes = []domain.Node{node}
	}

	log := *zerolog.Ctx(cmd.Context())
	p, err := panel.Open(auth.DefaultStore(), log)
	if err != nil {
		return err
	}

	results, err := fetchAll(cmd.Context(), p, nodes, includeAssigned)
	if err != nil {
		return err
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return printTable(cmd, results)
}

// fetchAll lists the allocations of every node concurrently. Results keep
// the order of nodes.
func fetchAll(ctx context.Context, p domain.Panel, nodes []domain.Node, includeAssigned bool) ([]nodeAllocations, error) {
	results := make([]nodeAllocations, len(nodes))

	g, ctx := errgroup.WithContext(ctx)
	for i, node := range nodes {
		g.Go(func() error {
			allocs, err := p.ListAllocations(ctx, node.ID)
			if err != nil {
				return fmt.Errorf("node %s: %w", node.Name, err)
			}

			res := nodeAllocations{Node: node, Allocations: []domain.Allocation{}}
			if includeAssigned {
				res.Allocations = append(res.Allocations, allocs...)
			} else if free := provision.Unassigned(allocs, node.Address); len(free) > 0 {
				res.Allocations = free
			}
			if pair, ok := provision.PairAllocations(allocs, node.Address); ok {
				res.NextPair = &pair
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printTable(cmd *cobra.Command, results []nodeAllocations) error {
	out := cmd.OutOrStdout()

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (ID %d, %s)\n", styles.Title.Render(res.Node.Name), res.Node.ID, res.Node.Address)

		if len(res.Allocations) == 0 {
			fmt.Fprintln(out, "  No allocations found.")
		} else {
			w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "  ID\tIP\tALIAS\tPORT\tSTATE")
			fmt.Fprintln(w, "  --\t--\t-----\t----\t-----")
			for _, a := range res.Allocations {
				alias := a.Alias
				if alias == "" {
					alias = "-"
				}
				fmt.Fprintf(w, "  %d\t%s\t%s\t%d\t%s\n", a.ID, a.IP, alias, a.Port, styles.AllocationState(a.Assigned))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if res.NextPair != nil {
			fmt.Fprintf(out, "  Next pair: %d and %d\n", res.NextPair.Primary.Port, res.NextPair.Secondary.Port)
		} else {
			fmt.Fprintln(out, "  "+styles.WarningText.Render("Not enough available unassigned allocations for this node."))
		}
	}
	return nil
}

func nodeNames() string {
	names := make([]string, 0, len(domain.Nodes))
	for _, n := range domain.Nodes {
		names = append(names, fmt.Sprintf("%s (%d)", strings.ToLower(n.Name), n.ID))
	}
	return strings.Join(names, ", ")
}
