package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/idilsaglam/todomvc/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// Every slot is a top-level member of one object; values are kept verbatim.

const DefaultFileName = "todos.json"

var errCorrupt = errors.New("jsonstore: unparseable document")

type Store struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

type Option func(*Store)

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open uses the file at path. A directory path gets DefaultFileName appended.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("jsonstore: path required")
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	s := &Store{path: path, log: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if errors.Is(err, errCorrupt) {
		// the next write replaces the document; keep the old bytes beside it
		bak := s.path + ".bak"
		s.log.Warn("json store unparseable, starting a new document", "path", s.path, "backup", bak, "err", err)
		if rerr := os.Rename(s.path, bak); rerr != nil {
			return fmt.Errorf("backup corrupt file: %w", rerr)
		}
		doc, err = map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not json", key)
	}
	doc[key] = json.RawMessage(value)
	return s.write(doc)
}

func (s *Store) Close() error { return nil }

func (s *Store) read() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if len(b) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errCorrupt, err)
	}
	return doc, nil
}

func (s *Store) write(doc map[string]json.RawMessage) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
