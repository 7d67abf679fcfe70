// Package diskvstore keeps slots as files under a base directory using diskv.
package diskvstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/idilsaglam/todomvc/internal/store"
)

type Store struct {
	d *diskv.Diskv
}

// Open roots the store at basePath, creating it if needed.
func Open(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("diskvstore: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("diskvstore: ensure base path: %w", err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	b, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	return s.d.WriteStream(key, bytes.NewReader(value), true)
}

func (s *Store) Close() error { return nil }

// Keys are arbitrary strings, so file names are their url-safe base64 form.
func keyToPath(key string) *diskv.PathKey {
	return &diskv.PathKey{FileName: base64.RawURLEncoding.EncodeToString([]byte(key))}
}

func pathToKey(pk *diskv.PathKey) string {
	b, err := base64.RawURLEncoding.DecodeString(pk.FileName)
	if err != nil {
		return pk.FileName
	}
	return string(b)
}
