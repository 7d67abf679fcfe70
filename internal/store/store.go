// Package store persists the entry collection in a single key-value slot.
//
// A Backend is any durable key-value store. A Slot binds a Backend to one
// fixed key and knows how to encode the collection.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"

	"github.com/idilsaglam/todomvc/internal/model"
)

// DefaultKey is the slot the collection lives under unless configured otherwise.
const DefaultKey = "todomvc.entries"

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is a durable key-value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Slot is the persistence slot for the entry collection.
type Slot struct {
	backend Backend
	key     string
	log     *slog.Logger
}

func NewSlot(b Backend, key string, log *slog.Logger) *Slot {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Slot{backend: b, key: key, log: log.With("key", key)}
}

func (s *Slot) Key() string { return s.key }

// Load reads the collection. A missing or unreadable slot yields an empty
// collection; the problem is logged and never returned.
func (s *Slot) Load(ctx context.Context) []model.Entry {
	b, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("slot empty, starting fresh")
		} else {
			s.log.Warn("slot unreadable, starting fresh", "err", err)
		}
		return []model.Entry{}
	}
	entries, err := Decode(b)
	if err != nil {
		s.log.Warn("slot unparseable, starting fresh", "err", err)
		return []model.Entry{}
	}
	s.log.Debug("slot loaded", "entries", len(entries))
	return entries
}

// Save writes the full collection under the slot key.
func (s *Slot) Save(ctx context.Context, entries []model.Entry) error {
	b, err := Encode(entries)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.backend.Put(ctx, s.key, b); err != nil {
		return fmt.Errorf("put %s: %w", s.key, err)
	}
	return nil
}

// Encode serializes the collection. A nil collection encodes as an empty list.
func Encode(entries []model.Entry) ([]byte, error) {
	if entries == nil {
		entries = []model.Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a serialized collection and assigns ids to entries stored
// without one.
func Decode(b []byte) ([]model.Entry, error) {
	var entries []model.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = model.NewID()
		}
	}
	return entries, nil
}
