package domain

// Allocation is a claimable (ip, port) binding on a node.
type Allocation struct {
	ID       int    `json:"id"`
	IP       string `json:"ip"`
	Alias    string `json:"alias,omitempty"`
	Port     int    `json:"port"`
	Assigned bool   `json:"assigned"`
}

// MatchesAddress reports whether the allocation is registered under the
// given node address, either as its alias or as its raw IP.
func (a Allocation) MatchesAddress(address string) bool {
	return a.Alias == address || a.IP == address
}

// AllocationPair is the two allocations a new server is bound to.
// Primary becomes the default binding, Secondary the additional one.
type AllocationPair struct {
	Primary   Allocation `json:"primary"`
	Secondary Allocation `json:"secondary"`
}
