package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lighthouseservers/ptprov/internal/provision"

	"github.com/google/go-cmp/cmp"
)

func TestLinePrompter_ReadsLines(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("y\r\nnova@example.com\nlast"), &out)

	var got []string
	for range 3 {
		answer, err := p.Ask("> ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, answer)
	}

	want := []string{"y", "nova@example.com", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
	if out.String() != "> > > " {
		t.Errorf("expected each prompt to be written once, got %q", out.String())
	}
}

func TestLinePrompter_EOFCancels(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Ask("Create user account? (Y/N): ")
	if !errors.Is(err, provision.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestLinePrompter_DrivesProvisioner(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("maybe\n"), &out)

	_, err := provision.New(nil, p, &out).Run(t.Context())
	if !errors.Is(err, provision.ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if !strings.Contains(out.String(), "Create user account? (Y/N): ") {
		t.Errorf("expected the opening question, got %q", out.String())
	}
}

func TestPromptTitle(t *testing.T) {
	tests := map[string]string{
		"Enter username: ":             "Enter username",
		"Create user account? (Y/N): ": "Create user account? (Y/N)",
		"no colon":                     "no colon",
	}
	for in, want := range tests {
		if got := promptTitle(in); got != want {
			t.Errorf("promptTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
