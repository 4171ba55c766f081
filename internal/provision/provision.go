// Package provision implements the interactive provisioning flow: resolve
// the owning user, choose a node, claim two unassigned allocations on it and
// create a server from a fixed template.
//
// Every step returns (value, error). ErrCancelled, ErrInvalidChoice and
// ErrInsufficientAllocations are outcomes rather than failures: the run
// stops cleanly and nothing is created. Any other error comes from the
// panel or the console and is returned to the caller unchanged apart from
// wrapping.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"

	"lighthouseservers/ptprov/internal/domain"

	"github.com/rs/zerolog"
)

// ExitSentinel ends the search and node prompts when typed (any case).
const ExitSentinel = "exit"

var (
	// ErrCancelled is returned when the operator leaves a prompt, by typing
	// the exit sentinel or by interrupting the console.
	ErrCancelled = errors.New("cancelled by operator")

	// ErrInvalidChoice is returned when the create-or-search question gets
	// an answer other than yes or no.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInsufficientAllocations is returned when the chosen node has fewer
	// than two unassigned allocations on its address.
	ErrInsufficientAllocations = errors.New("not enough available unassigned allocations")
)

// IsOutcome reports whether err ends a run without being a failure.
func IsOutcome(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, ErrInvalidChoice) ||
		errors.Is(err, ErrInsufficientAllocations)
}

// Prompter asks the operator one question and returns the raw answer.
// Implementations return ErrCancelled when the console is closed or the
// operator interrupts the prompt.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// Activity runs fn, which performs a panel call, while telling the operator
// what is happening. The default runs fn directly.
type Activity func(ctx context.Context, title string, fn func(ctx context.Context) error) error

func runDirect(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Provisioner drives one provisioning run against a panel.
type Provisioner struct {
	panel    domain.Panel
	prompt   Prompter
	out      io.Writer
	template domain.Template
	activity Activity
	log      zerolog.Logger
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithTemplate replaces the server template (default domain.Barotrauma).
func WithTemplate(t domain.Template) Option {
	return func(p *Provisioner) { p.template = t }
}

// WithActivity wraps panel calls, e.g. in a spinner.
func WithActivity(a Activity) Option {
	return func(p *Provisioner) {
		if a != nil {
			p.activity = a
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provisioner) { p.log = log }
}

// New creates a Provisioner. Operator-facing messages are written to out.
func New(panel domain.Panel, prompt Prompter, out io.Writer, opts ...Option) *Provisioner {
	p := &Provisioner{
		panel:    panel,
		prompt:   prompt,
		out:      out,
		template: domain.Barotrauma,
		activity: runDirect,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result records what a run resolved and created. Fields are filled in as
// the run progresses, so a partial Result is returned alongside errors.
type Result struct {
	Identity    domain.Identity
	UserCreated bool
	Node        domain.Node
	Pair        domain.AllocationPair
	Server      *domain.Server
}

// Run executes the whole flow: identity, node, allocations, server.
// The server is only created once all three preconditions hold.
func (p *Provisioner) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	identity, created, err := p.ResolveIdentity(ctx)
	if err != nil {
		return res, err
	}
	res.Identity, res.UserCreated = identity, created

	node, err := p.SelectNode(ctx)
	if err != nil {
		return res, err
	}
	res.Node = node

	pair, err := p.FindAllocationPair(ctx, node)
	if err != nil {
		return res, err
	}
	res.Pair = pair

	server, err := p.CreateServer(ctx, identity, pair)
	if err != nil {
		return res, err
	}
	res.Server = server

	return res, nil
}

func (p *Provisioner) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Provisioner) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
