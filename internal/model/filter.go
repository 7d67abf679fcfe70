package model

import (
	"fmt"
	"strings"
)

// Filter selects which entries are shown. It never changes the collection.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

var filterNames = [...]string{
	All:       "all",
	Active:    "active",
	Completed: "completed",
}

// Filters lists every filter in display order.
func Filters() []Filter { return []Filter{All, Active, Completed} }

// Matches reports whether e is visible under f.
func (f Filter) Matches(e Entry) bool {
	switch f {
	case Active:
		return !e.Completed
	case Completed:
		return e.Completed
	default:
		return true
	}
}

func (f Filter) String() string {
	if f < All || f > Completed {
		return fmt.Sprintf("filter(%d)", int(f))
	}
	return filterNames[f]
}

// Title is the capitalized name used for tabs and headers.
func (f Filter) Title() string {
	s := f.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseFilter is the inverse of String. Matching is case-insensitive.
func ParseFilter(s string) (Filter, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Filters() {
		if filterNames[f] == want {
			return f, nil
		}
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}

func (f Filter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Filter) UnmarshalText(b []byte) error {
	v, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Set and Type let a Filter be used directly as a command-line flag.
func (f *Filter) Set(s string) error { return f.UnmarshalText([]byte(s)) }

func (f *Filter) Type() string { return "filter" }
