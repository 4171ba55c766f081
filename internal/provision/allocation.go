package provision

import (
	"context"
	"fmt"

	"lighthouseservers/ptprov/internal/domain"
)

// FindAllocationPair fetches the node's allocations and selects the first
// two unassigned ones on the node's address. Fewer than two is reported as
// ErrInsufficientAllocations.
func (p *Provisioner) FindAllocationPair(ctx context.Context, node domain.Node) (domain.AllocationPair, error) {
	var allocs []domain.Allocation
	err := p.activity(ctx, fmt.Sprintf("Fetching allocations for %s...", node.Name), func(ctx context.Context) error {
		var err error
		allocs, err = p.panel.ListAllocations(ctx, node.ID)
		return err
	})
	if err != nil {
		return domain.AllocationPair{}, err
	}

	pair, ok := PairAllocations(allocs, node.Address)
	if !ok {
		p.println("Not enough available unassigned allocations for the selected node.")
		return domain.AllocationPair{}, fmt.Errorf("node %s: %w", node.Name, ErrInsufficientAllocations)
	}

	p.printf("First two unassigned allocations next to each other: %d and %d\n", pair.Primary.Port, pair.Secondary.Port)
	return pair, nil
}

// Unassigned filters allocs to the unassigned ones registered under address
// (as alias or IP), keeping the input order.
func Unassigned(allocs []domain.Allocation, address string) []domain.Allocation {
	var free []domain.Allocation
	for _, a := range allocs {
		if !a.Assigned && a.MatchesAddress(address) {
			free = append(free, a)
		}
	}
	return free
}

// PairAllocations returns the first two unassigned allocations on address,
// in the order given. ok is false when fewer than two qualify.
//
// The panel's list order is taken as-is; no sorting by port is applied.
func PairAllocations(allocs []domain.Allocation, address string) (pair domain.AllocationPair, ok bool) {
	free := Unassigned(allocs, address)
	if len(free) < 2 {
		return domain.AllocationPair{}, false
	}
	return domain.AllocationPair{Primary: free[0], Secondary: free[1]}, true
}
