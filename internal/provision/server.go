package provision

import (
	"context"

	"lighthouseservers/ptprov/internal/domain"
)

// BuildServerRequest combines the owner, the allocation pair and the
// provisioner's template into a creation request.
func (p *Provisioner) BuildServerRequest(owner domain.Identity, pair domain.AllocationPair) domain.ServerRequest {
	return p.template.Request(owner, pair)
}

// CreateServer submits a single creation request. A failure is returned
// as-is; the user resolved earlier in the run is left in place.
func (p *Provisioner) CreateServer(ctx context.Context, owner domain.Identity, pair domain.AllocationPair) (*domain.Server, error) {
	req := p.BuildServerRequest(owner, pair)

	var server *domain.Server
	err := p.activity(ctx, "Creating server...", func(ctx context.Context) error {
		var err error
		server, err = p.panel.CreateServer(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.log.Debug().Int("server_id", server.ID).Str("name", server.Name).Msg("server created")
	p.println("Server created successfully.")
	return server, nil
}
