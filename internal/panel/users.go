package panel

import (
	"context"
	"fmt"
	"net/http"

	"lighthouseservers/ptprov/internal/domain"
)

type apiUser struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u apiUser) toDomain() domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// CreateUser registers a new panel account.
func (c *Client) CreateUser(ctx context.Context, opts domain.CreateUserOpts) (*domain.User, error) {
	var out resource[apiUser]
	if err := c.do(ctx, http.MethodPost, "/users", opts, &out); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", opts.Username, err)
	}
	if out.Attributes.ID == 0 {
		return nil, fmt.Errorf("failed to create user %q: panel response carried no user id", opts.Username)
	}

	user := out.Attributes.toDomain()
	return &user, nil
}

// ListUsers returns every user on the panel. No server-side filtering is
// applied; callers match locally.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := listAll[apiUser](ctx, c, "/users")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]domain.User, 0, len(users))
	for _, u := range users {
		result = append(result, u.toDomain())
	}
	return result, nil
}
