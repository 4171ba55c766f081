package provision

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lighthouseservers/ptprov/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestPairAllocations(t *testing.T) {
	const addr = "metis.lighthouse-servers.com"

	tests := []struct {
		name    string
		allocs  []domain.Allocation
		wantOK  bool
		wantIDs [2]int
	}{
		{
			name:   "empty",
			allocs: nil,
		},
		{
			name:   "single free",
			allocs: []domain.Allocation{{ID: 1, Alias: addr, Port: 1000}},
		},
		{
			name: "first two free in list order",
			allocs: []domain.Allocation{
				{ID: 3, Alias: addr, Port: 27019},
				{ID: 1, Alias: addr, Port: 27015},
				{ID: 2, Alias: addr, Port: 27017},
			},
			wantOK:  true,
			wantIDs: [2]int{3, 1},
		},
		{
			name: "assigned entries skipped",
			allocs: []domain.Allocation{
				{ID: 1, Alias: addr, Port: 27015, Assigned: true},
				{ID: 2, Alias: addr, Port: 27016},
				{ID: 3, Alias: addr, Port: 27017, Assigned: true},
				{ID: 4, Alias: addr, Port: 27018},
			},
			wantOK:  true,
			wantIDs: [2]int{2, 4},
		},
		{
			name: "other addresses skipped",
			allocs: []domain.Allocation{
				{ID: 1, IP: "10.0.0.1", Port: 27015},
				{ID: 2, Alias: "adrastea.lighthouse-servers.com", Port: 27016},
				{ID: 3, IP: "10.0.0.2", Alias: addr, Port: 27017},
				{ID: 4, IP: addr, Port: 27018},
			},
			wantOK:  true,
			wantIDs: [2]int{3, 4},
		},
		{
			name: "only one free on address",
			allocs: []domain.Allocation{
				{ID: 1, Alias: addr, Port: 27015},
				{ID: 2, Alias: addr, Port: 27016, Assigned: true},
				{ID: 3, IP: "10.0.0.9", Port: 27017},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := PairAllocations(tt.allocs, addr)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if pair != (domain.AllocationPair{}) {
					t.Errorf("expected zero pair when insufficient, got %+v", pair)
				}
				return
			}
			got := [2]int{pair.Primary.ID, pair.Secondary.ID}
			if got != tt.wantIDs {
				t.Errorf("pair IDs = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestFindAllocationPair_Node2Sample(t *testing.T) {
	panel := &fakePanel{allocations: map[int][]domain.Allocation{2: node2Allocations()}}
	p, _, out := newTestProvisioner(t, panel)

	node, _ := domain.NodeByID(2)
	pair, err := p.FindAllocationPair(context.Background(), node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.AllocationPair{
		Primary:   domain.Allocation{ID: 5, IP: "104.243.46.28", Port: 27016},
		Secondary: domain.Allocation{ID: 6, IP: "104.243.46.28", Port: 27018},
	}
	if diff := cmp.Diff(want, pair); diff != "" {
		t.Errorf("pair mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "27016 and 27018") {
		t.Errorf("expected ports to be reported, got:\n%s", out.String())
	}
	if diff := cmp.Diff([]int{2}, panel.allocCalls); diff != "" {
		t.Errorf("allocation calls mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAllocationPair_Insufficient(t *testing.T) {
	panel := &fakePanel{allocations: map[int][]domain.Allocation{
		1: {{ID: 1, Alias: "metis.lighthouse-servers.com", Port: 27015}},
	}}
	p, _, out := newTestProvisioner(t, panel)

	node, _ := domain.NodeByID(1)
	_, err := p.FindAllocationPair(context.Background(), node)
	if !errors.Is(err, ErrInsufficientAllocations) {
		t.Fatalf("expected ErrInsufficientAllocations, got %v", err)
	}
	if !strings.Contains(out.String(), "Not enough available unassigned allocations for the selected node.") {
		t.Errorf("expected insufficient message, got:\n%s", out.String())
	}
}

func TestFindAllocationPair_ListError(t *testing.T) {
	panel := &fakePanel{listAllocErr: domain.ErrNotFound}
	p, _, _ := newTestProvisioner(t, panel)

	node, _ := domain.NodeByID(3)
	_, err := p.FindAllocationPair(context.Background(), node)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if IsOutcome(err) {
		t.Error("a panel failure must not be treated as a clean outcome")
	}
}
