package app

import (
	"context"
	"fmt"

	"github.com/idilsaglam/todomvc/internal/model"
)

// Command is one user intent issued by a presentation layer.
type Command interface {
	command()
}

type AddCmd struct{ Text string }

type EditCmd struct {
	Index int
	Text  string
}

type RemoveCmd struct{ Index int }

type SetFilterCmd struct{ Filter model.Filter }

type ToggleAllCmd struct{}

type ToggleEditCmd struct{ Index int }

type ToggleCmd struct{ Index int }

func (AddCmd) command()        {}
func (EditCmd) command()       {}
func (RemoveCmd) command()     {}
func (SetFilterCmd) command()  {}
func (ToggleAllCmd) command()  {}
func (ToggleEditCmd) command() {}
func (ToggleCmd) command()     {}

// Dispatch runs cmd against the service.
func (s *Service) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	switch c := cmd.(type) {
	case AddCmd:
		return s.Add(ctx, c.Text)
	case EditCmd:
		return s.Edit(ctx, c.Index, c.Text)
	case RemoveCmd:
		return s.Remove(ctx, c.Index)
	case SetFilterCmd:
		return s.SetFilter(ctx, c.Filter)
	case ToggleAllCmd:
		return s.ToggleAll(ctx)
	case ToggleEditCmd:
		return s.ToggleEdit(ctx, c.Index)
	case ToggleCmd:
		return s.Toggle(ctx, c.Index)
	}
	panic(fmt.Sprintf("app: unknown command %T", cmd))
}
