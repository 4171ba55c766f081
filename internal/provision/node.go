package provision

import (
	"context"
	"fmt"
	"strings"

	"lighthouseservers/ptprov/internal/domain"
)

// nodePrompt lists the fixed nodes, e.g. "Metis (ID 1), Amalthea (ID 2), ...".
func nodePrompt() string {
	parts := make([]string, 0, len(domain.Nodes))
	for _, n := range domain.Nodes {
		parts = append(parts, fmt.Sprintf("%s (ID %d)", n.Name, n.ID))
	}
	return "Select the node: " + strings.Join(parts, ", ") + ", type 'exit' to quit: "
}

// SelectNode prompts until the operator names one of the fixed nodes (by
// name or ID) or types the exit sentinel.
func (p *Provisioner) SelectNode(ctx context.Context) (domain.Node, error) {
	prompt := nodePrompt()
	for {
		if err := ctx.Err(); err != nil {
			return domain.Node{}, err
		}

		answer, err := p.prompt.Ask(prompt)
		if err != nil {
			return domain.Node{}, err
		}

		if strings.EqualFold(strings.TrimSpace(answer), ExitSentinel) {
			p.println("Exiting search.")
			return domain.Node{}, ErrCancelled
		}

		if node, ok := domain.ParseNode(answer); ok {
			return node, nil
		}
		p.println("Invalid node selection. Please try again.")
	}
}
