package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/model"
)

func descriptions(s *State) []string {
	out := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		out = append(out, e.Description)
	}
	return out
}

func TestAdd(t *testing.T) {
	s := New(nil)

	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   "))
	assert.Equal(t, 0, s.Len())

	require.True(t, s.Add("  buy milk  "))
	require.Equal(t, 1, s.Len())
	e := s.Entry(0)
	assert.Equal(t, "buy milk", e.Description)
	assert.False(t, e.Completed)
	assert.False(t, s.IsEditing(0))
	assert.NotEmpty(t, e.ID)
}

func TestScenario(t *testing.T) {
	s := New(nil)
	s.Add("a")
	s.Add("b")
	assert.Equal(t, []string{"a", "b"}, descriptions(s))
	assert.Equal(t, 2, s.Total())

	s.Toggle(0)
	assert.Equal(t, 1, s.Total())
	assert.False(t, s.IsAllCompleted())

	s.Toggle(1)
	assert.Equal(t, 0, s.Total())
	assert.True(t, s.IsAllCompleted())
}

func TestIsAllCompletedEmpty(t *testing.T) {
	s := New(nil)
	assert.False(t, s.IsAllCompleted())

	s.ToggleAll(!s.IsAllCompleted())
	assert.Equal(t, 0, s.Len())
}

func TestToggleAll(t *testing.T) {
	s := New([]model.Entry{{Description: "a"}, {Description: "b", Completed: true}, {Description: "c"}})

	s.ToggleAll(true)
	assert.Equal(t, 0, s.Total())
	assert.True(t, s.IsAllCompleted())

	s.ToggleAll(false)
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, 0, s.Completed())
}

func TestToggleEdit(t *testing.T) {
	s := New([]model.Entry{{Description: "first"}, {Description: "second"}})

	s.ToggleEdit(0)
	idx, ok := s.Editing()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "first", s.EditValue())

	s.ToggleEdit(1)
	assert.False(t, s.IsEditing(0))
	assert.True(t, s.IsEditing(1))
	assert.Equal(t, "second", s.EditValue())

	s.SetEditValue("draft")
	assert.Equal(t, "draft", s.EditValue())
	assert.Equal(t, "second", s.Entry(1).Description, "buffer must not leak into the entry")
}

func TestCompleteEdit(t *testing.T) {
	s := New([]model.Entry{{Description: "old"}})
	s.ToggleEdit(0)

	s.CompleteEdit(0, "  new text ")
	assert.Equal(t, "new text", s.Entry(0).Description)
	assert.False(t, s.IsEditing(0))
	assert.Equal(t, "", s.EditValue())
	_, ok := s.Editing()
	assert.False(t, ok)
}

func TestCompleteEditKeepsEmptyText(t *testing.T) {
	s := New([]model.Entry{{Description: "old"}})
	s.ToggleEdit(0)
	s.CompleteEdit(0, "   ")
	assert.Equal(t, "", s.Entry(0).Description)
	assert.Equal(t, 1, s.Len())
}

func TestSetEditValueWithoutEditing(t *testing.T) {
	s := New([]model.Entry{{Description: "a"}})
	s.SetEditValue("ignored")
	assert.Equal(t, "", s.EditValue())
}

func TestRemove(t *testing.T) {
	s := New([]model.Entry{{Description: "a"}, {Description: "b"}, {Description: "c"}})
	s.Remove(1)
	assert.Equal(t, []string{"a", "c"}, descriptions(s))
}

func TestRemoveShiftsEditing(t *testing.T) {
	t.Run("before editing entry", func(t *testing.T) {
		s := New([]model.Entry{{Description: "a"}, {Description: "b"}, {Description: "c"}})
		s.ToggleEdit(2)
		s.Remove(0)
		idx, ok := s.Editing()
		require.True(t, ok)
		assert.Equal(t, 1, idx)
		assert.Equal(t, "c", s.Entry(idx).Description)
		assert.Equal(t, "c", s.EditValue())
	})

	t.Run("the editing entry", func(t *testing.T) {
		s := New([]model.Entry{{Description: "a"}, {Description: "b"}})
		s.ToggleEdit(1)
		s.Remove(1)
		_, ok := s.Editing()
		assert.False(t, ok)
		assert.Equal(t, "", s.EditValue())
	})

	t.Run("after editing entry", func(t *testing.T) {
		s := New([]model.Entry{{Description: "a"}, {Description: "b"}})
		s.ToggleEdit(0)
		s.Remove(1)
		assert.True(t, s.IsEditing(0))
	})
}

func TestOutOfRangePanics(t *testing.T) {
	s := New([]model.Entry{{Description: "a"}})
	assert.Panics(t, func() { s.Toggle(1) })
	assert.Panics(t, func() { s.Remove(-1) })
	assert.Panics(t, func() { s.ToggleEdit(5) })
	assert.Panics(t, func() { s.CompleteEdit(1, "x") })
}

func TestVisible(t *testing.T) {
	s := New([]model.Entry{{Description: "a"}, {Description: "b", Completed: true}, {Description: "c"}})

	indices := func() []int {
		var out []int
		for _, v := range s.Visible() {
			out = append(out, v.Index)
		}
		return out
	}

	assert.Equal(t, []int{0, 1, 2}, indices())

	s.SetFilter(model.Active)
	assert.Equal(t, []int{0, 2}, indices())
	assert.Equal(t, 2, s.Total(), "total ignores the filter")

	s.SetFilter(model.Completed)
	assert.Equal(t, []int{1}, indices())
	assert.Equal(t, 3, s.Len(), "filter must not change membership")
}

func TestNewCopiesInput(t *testing.T) {
	in := []model.Entry{{Description: "a"}}
	s := New(in)
	s.Toggle(0)
	assert.False(t, in[0].Completed)

	out := s.Entries()
	out[0].Description = "changed"
	assert.Equal(t, "a", s.Entry(0).Description)
}

func TestIndexOf(t *testing.T) {
	s := New(nil)
	s.Add("a")
	s.Add("b")
	id := s.Entry(1).ID
	s.Remove(0)

	idx, ok := s.IndexOf(id)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = s.IndexOf("missing")
	assert.False(t, ok)
}
