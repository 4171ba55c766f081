package provision

import (
	"bytes"
	"context"
	"testing"

	"lighthouseservers/ptprov/internal/domain"
)

// fakePanel is an in-memory domain.Panel that records calls.
type fakePanel struct {
	users       []domain.User
	allocations map[int][]domain.Allocation
	nextUserID  int

	createUserErr   error
	listUsersErr    error
	listAllocErr    error
	createServerErr error

	createdUsers   []domain.CreateUserOpts
	listUsersCalls int
	allocCalls     []int
	serverRequests []domain.ServerRequest
}

func (f *fakePanel) CreateUser(ctx context.Context, opts domain.CreateUserOpts) (*domain.User, error) {
	f.createdUsers = append(f.createdUsers, opts)
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}
	return &domain.User{
		ID:        f.nextUserID,
		Username:  opts.Username,
		Email:     opts.Email,
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
	}, nil
}

func (f *fakePanel) ListUsers(ctx context.Context) ([]domain.User, error) {
	f.listUsersCalls++
	return f.users, f.listUsersErr
}

func (f *fakePanel) ListAllocations(ctx context.Context, nodeID int) ([]domain.Allocation, error) {
	f.allocCalls = append(f.allocCalls, nodeID)
	return f.allocations[nodeID], f.listAllocErr
}

func (f *fakePanel) CreateServer(ctx context.Context, req domain.ServerRequest) (*domain.Server, error) {
	f.serverRequests = append(f.serverRequests, req)
	if f.createServerErr != nil {
		return nil, f.createServerErr
	}
	return &domain.Server{ID: 99, Identifier: "abcd1234", Name: req.Name, UserID: req.User}, nil
}

// scriptedPrompter answers prompts from a fixed script. Once the script is
// exhausted it behaves like a closed console.
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (s *scriptedPrompter) Ask(prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	if len(s.answers) == 0 {
		return "", ErrCancelled
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	return next, nil
}

// newTestProvisioner returns a Provisioner over panel answering with the
// given script, and the buffer operator output is written to.
func newTestProvisioner(t *testing.T, panel *fakePanel, answers ...string) (*Provisioner, *scriptedPrompter, *bytes.Buffer) {
	t.Helper()
	prompt := &scriptedPrompter{answers: answers}
	var out bytes.Buffer
	return New(panel, prompt, &out), prompt, &out
}

// sampleUsers is a small user directory shared by search tests.
func sampleUsers() []domain.User {
	return []domain.User{
		{ID: 1, Username: "nova", Email: "nova@example.com", FirstName: "Nova", LastName: "123456789"},
		{ID: 2, Username: "orion", Email: "orion@example.com", FirstName: "Orion", LastName: "Smith"},
		{ID: 3, Username: "lyra", Email: "lyra@example.com", FirstName: "Lyra", LastName: "Smith"},
	}
}

// node2Allocations is the node 2 sample: two free ports and one taken.
func node2Allocations() []domain.Allocation {
	return []domain.Allocation{
		{ID: 5, IP: "104.243.46.28", Port: 27016},
		{ID: 6, IP: "104.243.46.28", Port: 27018},
		{ID: 7, IP: "104.243.46.28", Port: 27020, Assigned: true},
	}
}
