// Package state holds the entry collection and every rule for changing it.
//
// Indices are zero-based positions into the current collection. Passing an
// index outside [0, Len()) is a programming error and panics.
package state

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todomvc/internal/model"
)

const noEdit = -1

// State is the ordered collection of entries plus the current filter and the
// in-progress edit buffer. At most one entry is editing at a time.
type State struct {
	entries   []model.Entry
	filter    model.Filter
	editIdx   int
	editValue string
}

// View is an entry as the presentation layer sees it.
type View struct {
	Index   int
	Entry   model.Entry
	Editing bool
}

// New builds a state from previously persisted entries.
func New(entries []model.Entry) *State {
	s := &State{
		entries: make([]model.Entry, len(entries)),
		filter:  model.All,
		editIdx: noEdit,
	}
	copy(s.entries, entries)
	return s
}

func (s *State) check(op string, idx int) {
	if idx < 0 || idx >= len(s.entries) {
		panic(fmt.Sprintf("state: %s: index %d out of range [0,%d)", op, idx, len(s.entries)))
	}
}

// Add appends a new entry with the trimmed text. Blank text is ignored.
func (s *State) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s.entries = append(s.entries, model.NewEntry(text))
	return true
}

// Remove deletes the entry at idx. Later entries move down by one.
func (s *State) Remove(idx int) {
	s.check("remove", idx)
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	switch {
	case s.editIdx == idx:
		s.ClearAllEdit()
	case s.editIdx > idx:
		s.editIdx--
	}
}

// Toggle flips the completion flag of the entry at idx.
func (s *State) Toggle(idx int) {
	s.check("toggle", idx)
	s.entries[idx].Completed = !s.entries[idx].Completed
}

// ToggleAll sets every entry's completion flag to status.
func (s *State) ToggleAll(status bool) {
	for i := range s.entries {
		s.entries[i].Completed = status
	}
}

// IsAllCompleted is false for an empty list.
func (s *State) IsAllCompleted() bool {
	if len(s.entries) == 0 {
		return false
	}
	for _, e := range s.entries {
		if !e.Completed {
			return false
		}
	}
	return true
}

// ToggleEdit makes idx the only editing entry and loads its description into
// the edit buffer.
func (s *State) ToggleEdit(idx int) {
	s.check("toggle edit", idx)
	s.ClearAllEdit()
	s.editIdx = idx
	s.editValue = s.entries[idx].Description
}

// ClearAllEdit leaves no entry editing and empties the edit buffer.
func (s *State) ClearAllEdit() {
	s.editIdx = noEdit
	s.editValue = ""
}

// CompleteEdit stores the trimmed text as the description of idx and ends
// editing. Empty text is stored as is.
func (s *State) CompleteEdit(idx int, text string) {
	s.check("complete edit", idx)
	s.entries[idx].Description = strings.TrimSpace(text)
	s.ClearAllEdit()
}

// SetEditValue replaces the edit buffer while an entry is editing.
func (s *State) SetEditValue(text string) {
	if s.editIdx == noEdit {
		return
	}
	s.editValue = text
}

// Total counts incomplete entries, whatever the filter.
func (s *State) Total() int {
	n := 0
	for _, e := range s.entries {
		if !e.Completed {
			n++
		}
	}
	return n
}

// Completed counts completed entries.
func (s *State) Completed() int { return len(s.entries) - s.Total() }

func (s *State) SetFilter(f model.Filter) { s.filter = f }

func (s *State) Filter() model.Filter { return s.filter }

func (s *State) EditValue() string { return s.editValue }

// Editing returns the index of the editing entry, if any.
func (s *State) Editing() (int, bool) {
	return s.editIdx, s.editIdx != noEdit
}

func (s *State) IsEditing(idx int) bool { return s.editIdx != noEdit && s.editIdx == idx }

func (s *State) Len() int { return len(s.entries) }

func (s *State) Entry(idx int) model.Entry {
	s.check("entry", idx)
	return s.entries[idx]
}

// Entries returns a copy of the collection in display order.
func (s *State) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IndexOf finds the current position of the entry with the given id.
func (s *State) IndexOf(id string) (int, bool) {
	for i, e := range s.entries {
		if e.ID == id {
			return i, true
		}
	}
	return noEdit, false
}

// Visible lists the entries matching the current filter, keeping their
// positions in the full collection.
func (s *State) Visible() []View {
	out := make([]View, 0, len(s.entries))
	for i, e := range s.entries {
		if !s.filter.Matches(e) {
			continue
		}
		out = append(out, View{Index: i, Entry: e, Editing: s.IsEditing(i)})
	}
	return out
}
