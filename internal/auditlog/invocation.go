package auditlog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Invocation describes one finished command run.
type Invocation struct {
	RunID    string
	Command  string
	Args     []string
	Started  time.Time
	Finished time.Time
	Err      error
	Meta     Metadata
}

// NewRunID returns a fresh identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// Entry converts the invocation into an entry ready to save. Args are
// sanitized.
func (inv Invocation) Entry() *AuditEntry {
	entry := &AuditEntry{
		RunID:        inv.RunID,
		Timestamp:    inv.Started.UTC(),
		Command:      inv.Command,
		Args:         strings.Join(SanitizeArgs(inv.Args), " "),
		Node:         inv.Meta.Node,
		ResourceType: inv.Meta.ResourceType,
		ResourceID:   inv.Meta.ResourceID,
		ResourceName: inv.Meta.ResourceName,
		Outcome:      OutcomeSuccess,
		DurationMs:   inv.Finished.Sub(inv.Started).Milliseconds(),
	}
	if entry.RunID == "" {
		entry.RunID = NewRunID()
	}

	switch {
	case inv.Err != nil:
		entry.Outcome = OutcomeError
		entry.Detail = inv.Err.Error()
	case inv.Meta.Outcome != "":
		entry.Outcome = inv.Meta.Outcome
		entry.Detail = inv.Meta.Detail
	}
	return entry
}

// Record saves the invocation to the default repository. Failures are
// ignored: the audit trail never affects a command's result.
func Record(inv Invocation) {
	repo, err := Open()
	if err != nil {
		return
	}
	defer repo.Close()

	_ = repo.Save(inv.Entry())
}
