package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/store/diskvstore"
	"github.com/idilsaglam/todomvc/internal/store/jsonstore"
	"github.com/idilsaglam/todomvc/internal/store/memstore"
	"github.com/idilsaglam/todomvc/internal/store/sqlitestore"
)

type backendFactory func(t *testing.T) store.Backend

func backends() map[string]backendFactory {
	return map[string]backendFactory{
		"memory": func(t *testing.T) store.Backend { return memstore.New() },
		"diskv": func(t *testing.T) store.Backend {
			b, err := diskvstore.Open(t.TempDir())
			require.NoError(t, err)
			return b
		},
		"json": func(t *testing.T) store.Backend {
			b, err := jsonstore.Open(filepath.Join(t.TempDir(), "todos.json"))
			require.NoError(t, err)
			return b
		},
		"sqlite": func(t *testing.T) store.Backend {
			b, err := sqlitestore.Open(context.Background(), filepath.Join(t.TempDir(), "todo.sqlite"))
			require.NoError(t, err)
			return b
		},
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			b := open(t)
			defer b.Close()

			_, err := b.Get(ctx, "missing")
			assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)

			require.NoError(t, b.Put(ctx, "a.key", []byte(`[1]`)))
			require.NoError(t, b.Put(ctx, "other", []byte(`{}`)))
			require.NoError(t, b.Put(ctx, "a.key", []byte(`[1,2]`)))

			got, err := b.Get(ctx, "a.key")
			require.NoError(t, err)
			assert.JSONEq(t, `[1,2]`, string(got))

			got, err = b.Get(ctx, "other")
			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(got))
		})
	}
}

func TestSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			slot := store.NewSlot(open(t), "", nil)
			assert.Equal(t, store.DefaultKey, slot.Key())

			in := []model.Entry{
				model.NewEntry("buy milk"),
				{ID: model.NewID(), Description: "walk dog", Completed: true},
				model.NewEntry("call mum"),
			}
			require.NoError(t, slot.Save(ctx, in))
			assert.Equal(t, in, slot.Load(ctx))
		})
	}
}

func TestSlotRoundTripProperty(t *testing.T) {
	ctx := context.Background()
	slot := store.NewSlot(memstore.New(), "prop", nil)
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOf(rapid.Custom(func(t *rapid.T) model.Entry {
			return model.Entry{
				ID:          rapid.StringMatching(`[0-9a-f]{8}`).Draw(t, "id"),
				Description: rapid.String().Draw(t, "description"),
				Completed:   rapid.Bool().Draw(t, "completed"),
			}
		})).Draw(t, "entries")

		if err := slot.Save(ctx, in); err != nil {
			t.Fatalf("save: %v", err)
		}
		out := slot.Load(ctx)
		if len(out) != len(in) {
			t.Fatalf("loaded %d entries, saved %d", len(out), len(in))
		}
		for i := range in {
			if in[i] != out[i] {
				t.Fatalf("entry %d: saved %+v loaded %+v", i, in[i], out[i])
			}
		}
	})
}

func TestSlotLoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		slot := store.NewSlot(memstore.New(), "k", nil)
		got := slot.Load(ctx)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unparseable", func(t *testing.T) {
		b := memstore.New()
		require.NoError(t, b.Put(ctx, "k", []byte(`{not json`)))
		assert.Empty(t, store.NewSlot(b, "k", nil).Load(ctx))
	})

	t.Run("backend error", func(t *testing.T) {
		assert.Empty(t, store.NewSlot(brokenBackend{}, "k", nil).Load(ctx))
	})

	t.Run("corrupt json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
		b, err := jsonstore.Open(path)
		require.NoError(t, err)
		slot := store.NewSlot(b, "k", nil)
		assert.Empty(t, slot.Load(ctx))

		want := []model.Entry{model.NewEntry("after")}
		require.NoError(t, slot.Save(ctx, want))
		assert.Equal(t, want, slot.Load(ctx))

		bak, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "garbage", string(bak))
	})
}

func TestSlotSaveError(t *testing.T) {
	err := store.NewSlot(brokenBackend{}, "k", nil).Save(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBroken))
	assert.Contains(t, err.Error(), "k")
}

func TestDecodeLegacyDocument(t *testing.T) {
	entries, err := store.Decode([]byte(`[{"description":"a","completed":true,"editing":true},{"description":"b","completed":false,"editing":false}]`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Description)
	assert.True(t, entries[0].Completed)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestEncodeNil(t *testing.T) {
	b, err := store.Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestJSONStoreDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	b, err := jsonstore.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, jsonstore.DefaultFileName), b.Path())
}

var errBroken = errors.New("broken")

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenBackend) Put(context.Context, string, []byte) error  { return errBroken }
func (brokenBackend) Close() error                                { return nil }
