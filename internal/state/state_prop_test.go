package state

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/idilsaglam/todomvc/internal/model"
)

func genEntries() *rapid.Generator[[]model.Entry] {
	return rapid.SliceOfN(rapid.Custom(func(t *rapid.T) model.Entry {
		return model.Entry{
			ID:          model.NewID(),
			Description: rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "description"),
			Completed:   rapid.Bool().Draw(t, "completed"),
		}
	}), 0, 12)
}

func incomplete(entries []model.Entry) int {
	n := 0
	for _, e := range entries {
		if !e.Completed {
			n++
		}
	}
	return n
}

// TestStateMachine drives random command sequences and checks the invariants
// after every step.
func TestStateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(genEntries().Draw(t, "entries"))

		pick := func(t *rapid.T) int {
			if s.Len() == 0 {
				t.Skip("empty")
			}
			return rapid.IntRange(0, s.Len()-1).Draw(t, "idx")
		}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				before := s.Len()
				text := rapid.StringMatching(` {0,2}[a-z ]{0,6} {0,2}`).Draw(t, "text")
				added := s.Add(text)
				if added != (s.Len() == before+1) {
					t.Fatalf("add reported %v but length went %d -> %d", added, before, s.Len())
				}
			},
			"remove": func(t *rapid.T) {
				idx := pick(t)
				before := s.Entries()
				s.Remove(idx)
				after := s.Entries()
				if len(after) != len(before)-1 {
					t.Fatalf("remove changed length %d -> %d", len(before), len(after))
				}
				want := append(append([]model.Entry{}, before[:idx]...), before[idx+1:]...)
				for i := range want {
					if want[i] != after[i] {
						t.Fatalf("order not preserved at %d: want %+v got %+v", i, want[i], after[i])
					}
				}
			},
			"toggle": func(t *rapid.T) {
				s.Toggle(pick(t))
			},
			"toggleAll": func(t *rapid.T) {
				status := rapid.Bool().Draw(t, "status")
				s.ToggleAll(status)
				if status && s.Total() != 0 {
					t.Fatalf("toggle all true left %d open", s.Total())
				}
				if !status && s.Total() != s.Len() {
					t.Fatalf("toggle all false: total %d of %d", s.Total(), s.Len())
				}
			},
			"toggleEdit": func(t *rapid.T) {
				idx := pick(t)
				s.ToggleEdit(idx)
				if s.EditValue() != s.Entry(idx).Description {
					t.Fatalf("edit buffer %q does not match entry %q", s.EditValue(), s.Entry(idx).Description)
				}
			},
			"completeEdit": func(t *rapid.T) {
				idx := pick(t)
				s.CompleteEdit(idx, rapid.StringMatching(`[a-z]{0,6}`).Draw(t, "text"))
				if s.IsEditing(idx) || s.EditValue() != "" {
					t.Fatalf("complete edit left entry %d editing", idx)
				}
			},
			"setFilter": func(t *rapid.T) {
				s.SetFilter(rapid.SampledFrom(model.Filters()).Draw(t, "filter"))
			},
			"": func(t *rapid.T) {
				if s.Total() != incomplete(s.Entries()) {
					t.Fatalf("total %d, want %d", s.Total(), incomplete(s.Entries()))
				}
				editing := 0
				for i := 0; i < s.Len(); i++ {
					if s.IsEditing(i) {
						editing++
					}
				}
				if editing > 1 {
					t.Fatalf("%d entries editing", editing)
				}
				// No action writes the buffer directly, so it mirrors the editing entry.
				if idx, ok := s.Editing(); ok && s.EditValue() != s.Entry(idx).Description {
					t.Fatalf("edit buffer %q out of sync with entry %d", s.EditValue(), idx)
				}
				if editing == 0 && s.EditValue() != "" {
					t.Fatalf("edit buffer %q with no entry editing", s.EditValue())
				}
				if s.IsAllCompleted() != (s.Len() > 0 && s.Total() == 0) {
					t.Fatalf("is all completed inconsistent: len=%d total=%d", s.Len(), s.Total())
				}
			},
		})
	})
}

func TestToggleEditLeavesOnlyLast(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		entries := rapid.SliceOfN(rapid.Just(model.Entry{Description: "x"}), 2, 10).Draw(t, "entries")
		s := New(entries)
		i := rapid.IntRange(0, s.Len()-1).Draw(t, "i")
		j := rapid.IntRange(0, s.Len()-1).Filter(func(j int) bool { return j != i }).Draw(t, "j")

		s.ToggleEdit(i)
		s.ToggleEdit(j)
		for k := 0; k < s.Len(); k++ {
			if s.IsEditing(k) != (k == j) {
				t.Fatalf("entry %d editing=%v after toggling %d then %d", k, s.IsEditing(k), i, j)
			}
		}
	})
}
