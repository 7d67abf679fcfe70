package model

import "github.com/google/uuid"

// Entry is the domain model for a todo entry.
// Whether an entry is being edited is tracked by the owning state, not here.
type Entry struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewEntry returns an incomplete entry with a fresh identifier.
func NewEntry(description string) Entry {
	return Entry{ID: NewID(), Description: description}
}

// NewID generates a stable identifier for an entry.
func NewID() string { return uuid.NewString() }
