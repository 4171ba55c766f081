package panel

import (
	"context"
	"fmt"
	"net/http"

	"lighthouseservers/ptprov/internal/domain"
)

type apiServer struct {
	ID         int    `json:"id"`
	UUID       string `json:"uuid"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	User       int    `json:"user"`
	Node       int    `json:"node"`
}

// CreateServer submits a server creation request. It is sent exactly once.
func (c *Client) CreateServer(ctx context.Context, req domain.ServerRequest) (*domain.Server, error) {
	var out resource[apiServer]
	if err := c.do(ctx, http.MethodPost, "/servers", req, &out); err != nil {
		return nil, fmt.Errorf("failed to create server %q: %w", req.Name, err)
	}

	a := out.Attributes
	return &domain.Server{
		ID:         a.ID,
		UUID:       a.UUID,
		Identifier: a.Identifier,
		Name:       a.Name,
		UserID:     a.User,
		NodeID:     a.Node,
	}, nil
}
