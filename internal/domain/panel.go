package domain

import "context"

// Panel is the subset of the panel application API used to provision
// servers. The HTTP implementation lives in internal/panel; tests use
// in-memory fakes.
type Panel interface {
	// CreateUser registers a new account and returns it with its assigned ID.
	CreateUser(ctx context.Context, opts CreateUserOpts) (*User, error)

	// ListUsers returns every user registered on the panel.
	ListUsers(ctx context.Context) ([]User, error)

	// ListAllocations returns every allocation registered to the node,
	// in the order the panel returns them.
	ListAllocations(ctx context.Context, nodeID int) ([]Allocation, error)

	// CreateServer submits a server creation request.
	CreateServer(ctx context.Context, req ServerRequest) (*Server, error)
}
