package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatches(t *testing.T) {
	open := Entry{Description: "open"}
	done := Entry{Description: "done", Completed: true}

	tests := []struct {
		filter   Filter
		open     bool
		complete bool
	}{
		{All, true, true},
		{Active, true, false},
		{Completed, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			assert.Equal(t, tt.open, tt.filter.Matches(open))
			assert.Equal(t, tt.complete, tt.filter.Matches(done))
		})
	}
}

func TestFiltersOrder(t *testing.T) {
	assert.Equal(t, []Filter{All, Active, Completed}, Filters())
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters() {
		got, err := ParseFilter(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFilter("  ACTIVE ")
	require.NoError(t, err)
	assert.Equal(t, Active, got)

	_, err = ParseFilter("pending")
	assert.Error(t, err)
}

func TestFilterFlagValue(t *testing.T) {
	var f Filter
	require.NoError(t, f.Set("completed"))
	assert.Equal(t, Completed, f)
	assert.Equal(t, "filter", f.Type())
	assert.Equal(t, "Completed", f.Title())
	assert.Error(t, f.Set("nope"))
	assert.Equal(t, Completed, f, "failed Set must not change the value")
}

func TestNewEntry(t *testing.T) {
	a, b := NewEntry("x"), NewEntry("x")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Completed)
}
