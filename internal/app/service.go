// Package app is the command surface shared by the CLI and the TUI.
//
// Every command mutates the state and then saves the whole collection before
// the next command is accepted.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/store"
)

// ErrSave wraps every persistence failure. Callers should treat it as fatal.
var ErrSave = errors.New("app: save failed")

// Service provides the list operations on top of a persistence slot.
type Service struct {
	mu    sync.Mutex
	state *state.State
	slot  *store.Slot
	log   *slog.Logger
}

// Snapshot is a copy of everything a presentation layer renders.
type Snapshot struct {
	Entries      []model.Entry
	Visible      []state.View
	Filter       model.Filter
	EditValue    string
	EditIndex    int // -1 when nothing is being edited
	Total        int
	Completed    int
	AllCompleted bool
}

// New loads the collection from slot and starts with the All filter.
func New(ctx context.Context, slot *store.Slot, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		state: state.New(slot.Load(ctx)),
		slot:  slot,
		log:   log,
	}
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Service) snapshot() Snapshot {
	idx, ok := s.state.Editing()
	if !ok {
		idx = -1
	}
	return Snapshot{
		Entries:      s.state.Entries(),
		Visible:      s.state.Visible(),
		Filter:       s.state.Filter(),
		EditValue:    s.state.EditValue(),
		EditIndex:    idx,
		Total:        s.state.Total(),
		Completed:    s.state.Completed(),
		AllCompleted: s.state.IsAllCompleted(),
	}
}

// Len is the number of entries, used to validate user supplied indices.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Len()
}

// apply runs fn and persists the result while holding the lock.
func (s *Service) apply(ctx context.Context, op string, idx int, fn func(*state.State)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.state)
	snap := s.snapshot()
	s.log.Debug("command", "op", op, "index", idx, "entries", len(snap.Entries))

	if err := s.slot.Save(ctx, snap.Entries); err != nil {
		s.log.Error("save failed", "op", op, "key", s.slot.Key(), "err", err)
		return snap, fmt.Errorf("%w: %s: %v", ErrSave, op, err)
	}
	return snap, nil
}

// Add appends trimmed text. Blank text leaves the list as it was.
func (s *Service) Add(ctx context.Context, text string) (Snapshot, error) {
	return s.apply(ctx, "add", -1, func(st *state.State) { st.Add(text) })
}

// Edit finishes editing idx with text.
func (s *Service) Edit(ctx context.Context, idx int, text string) (Snapshot, error) {
	return s.apply(ctx, "edit", idx, func(st *state.State) { st.CompleteEdit(idx, text) })
}

func (s *Service) Remove(ctx context.Context, idx int) (Snapshot, error) {
	return s.apply(ctx, "remove", idx, func(st *state.State) { st.Remove(idx) })
}

func (s *Service) SetFilter(ctx context.Context, f model.Filter) (Snapshot, error) {
	return s.apply(ctx, "filter", -1, func(st *state.State) { st.SetFilter(f) })
}

// ToggleAll completes everything, or reopens everything when all entries are
// already complete.
func (s *Service) ToggleAll(ctx context.Context) (Snapshot, error) {
	return s.apply(ctx, "toggle all", -1, func(st *state.State) { st.ToggleAll(!st.IsAllCompleted()) })
}

// ToggleEdit starts editing idx; the edit buffer holds its description.
func (s *Service) ToggleEdit(ctx context.Context, idx int) (Snapshot, error) {
	return s.apply(ctx, "toggle edit", idx, func(st *state.State) { st.ToggleEdit(idx) })
}

func (s *Service) Toggle(ctx context.Context, idx int) (Snapshot, error) {
	return s.apply(ctx, "toggle", idx, func(st *state.State) { st.Toggle(idx) })
}

// CancelEdit stops editing without changing any entry.
func (s *Service) CancelEdit(ctx context.Context) (Snapshot, error) {
	return s.apply(ctx, "cancel edit", -1, func(st *state.State) { st.ClearAllEdit() })
}

// SetEditValue tracks typing in the edit field. Only the buffer changes, so
// nothing is saved.
func (s *Service) SetEditValue(text string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetEditValue(text)
	return s.snapshot()
}
