package panel

import (
	"context"
	"fmt"

	"lighthouseservers/ptprov/internal/domain"
)

type apiAllocation struct {
	ID       int    `json:"id"`
	IP       string `json:"ip"`
	Alias    string `json:"alias"`
	Port     int    `json:"port"`
	Notes    string `json:"notes"`
	Assigned bool   `json:"assigned"`
}

// ListAllocations returns every allocation registered to the node, in the
// order the panel returns them.
func (c *Client) ListAllocations(ctx context.Context, nodeID int) ([]domain.Allocation, error) {
	allocs, err := listAll[apiAllocation](ctx, c, fmt.Sprintf("/nodes/%d/allocations", nodeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for node %d: %w", nodeID, err)
	}

	result := make([]domain.Allocation, 0, len(allocs))
	for _, a := range allocs {
		result = append(result, domain.Allocation{
			ID:       a.ID,
			IP:       a.IP,
			Alias:    a.Alias,
			Port:     a.Port,
			Assigned: a.Assigned,
		})
	}
	return result, nil
}
