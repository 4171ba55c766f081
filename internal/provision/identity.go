package provision

import (
	"context"
	"strings"

	"lighthouseservers/ptprov/internal/domain"
)

// ResolveIdentity asks whether to create a new account or search for an
// existing one, and runs the chosen step. created reports which one ran.
func (p *Provisioner) ResolveIdentity(ctx context.Context) (identity domain.Identity, created bool, err error) {
	answer, err := p.prompt.Ask("Create user account? (Y/N): ")
	if err != nil {
		return domain.Identity{}, false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		identity, err = p.CreateAccount(ctx)
		return identity, err == nil, err
	case "n", "no":
		identity, err = p.SearchAccount(ctx)
		return identity, false, err
	default:
		p.println("Invalid choice. Please enter 'Y' or 'N'.")
		return domain.Identity{}, false, ErrInvalidChoice
	}
}

// CreateAccount prompts for the new account's details and registers it.
// A failed request is returned as an error; it is never retried.
func (p *Provisioner) CreateAccount(ctx context.Context) (domain.Identity, error) {
	var opts domain.CreateUserOpts
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Enter user email: ", &opts.Email},
		{"Enter username: ", &opts.Username},
		{"Enter first name: ", &opts.FirstName},
		{"Enter last name: ", &opts.LastName},
	}
	for _, f := range fields {
		v, err := p.askRequired(f.prompt)
		if err != nil {
			return domain.Identity{}, err
		}
		*f.dest = v
	}

	var user *domain.User
	err := p.activity(ctx, "Creating user...", func(ctx context.Context) error {
		var err error
		user, err = p.panel.CreateUser(ctx, opts)
		return err
	})
	if err != nil {
		return domain.Identity{}, err
	}

	p.log.Debug().Int("user_id", user.ID).Str("username", opts.Username).Msg("user created")
	p.printf("User created successfully with ID: %d\n", user.ID)

	return domain.Identity{FirstName: opts.FirstName, UserID: user.ID}, nil
}

// SearchAccount prompts for a query until exactly one user matches or the
// operator types the exit sentinel. Each attempt fetches the full user list.
func (p *Provisioner) SearchAccount(ctx context.Context) (domain.Identity, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Identity{}, err
		}
		query, err := p.prompt.Ask("Enter email, username, or last name to search for an existing user (type 'exit' to quit): ")
		if err != nil {
			return domain.Identity{}, err
		}
		query = strings.TrimSpace(query)

		if strings.EqualFold(query, ExitSentinel) {
			p.println("Exiting search.")
			return domain.Identity{}, ErrCancelled
		}
		if query == "" {
			p.println("Please enter a search term.")
			continue
		}

		var users []domain.User
		err = p.activity(ctx, "Searching users...", func(ctx context.Context) error {
			var err error
			users, err = p.panel.ListUsers(ctx)
			return err
		})
		if err != nil {
			return domain.Identity{}, err
		}

		matches := MatchUsers(users, query)
		p.log.Debug().Str("query", query).Int("users", len(users)).Int("matches", len(matches)).Msg("user search")

		switch len(matches) {
		case 0:
			p.printf("No user found with the provided search input: %s\n", query)
		case 1:
			u := matches[0]
			p.printf("User found with ID: %d\n", u.ID)
			return domain.Identity{FirstName: u.FirstName, UserID: u.ID}, nil
		default:
			p.println("Multiple users found. Please refine your search.")
		}
	}
}

// MatchUsers returns the users whose email, username or last name equals
// query, ignoring case. Order follows users.
func MatchUsers(users []domain.User, query string) []domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []domain.User
	for _, u := range users {
		if strings.ToLower(u.Email) == q ||
			strings.ToLower(u.Username) == q ||
			strings.ToLower(u.LastName) == q {
			matches = append(matches, u)
		}
	}
	return matches
}

// askRequired re-asks until the answer is non-blank.
func (p *Provisioner) askRequired(prompt string) (string, error) {
	for {
		v, err := p.prompt.Ask(prompt)
		if err != nil {
			return "", err
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, nil
		}
		p.println("A value is required.")
	}
}
