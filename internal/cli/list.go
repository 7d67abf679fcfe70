package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// ListOptions select and shape the entries printed by ls.
type ListOptions struct {
	Filter model.Filter
	Group  bool
	Table  bool
}

func AddListArgs(fs *pflag.FlagSet, o *ListOptions) {
	fs.Var(&o.Filter, "filter", base.Wrap80("Entries to show: all, active or completed."))
	fs.BoolVar(&o.Group, "group", false, "Group output by pending/done.")
	fs.BoolVar(&o.Table, "table", false, "Render entries as aligned columns.")
}

func addList(topLevel *cobra.Command, e *env) {
	lo := &ListOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List entries",
		Example: `
todo ls
todo ls --filter active --group
todo ls --table
`,
		Args: exactArgs(0, "todo ls [--filter all|active|completed]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := svc.SetFilter(cmd.Context(), lo.Filter)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case e.out.JSON:
				return printJSON(w, snap)
			case lo.Table:
				ui.PrintTable(w, snap)
			default:
				ui.PrintList(w, snap, ui.ListOptions{Group: lo.Group, Width: ui.Width()})
			}
			return nil
		},
	}

	AddListArgs(cmd.Flags(), lo)
	base.AddOutputArg(cmd, &e.out)
	topLevel.AddCommand(cmd)
}

type jsonEntry struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type jsonList struct {
	Filter    model.Filter `json:"filter"`
	Entries   []jsonEntry  `json:"entries"`
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	Left      string       `json:"left,omitempty"`
}

// printJSON writes the visible entries with their 1-based positions.
func printJSON(w io.Writer, snap app.Snapshot) error {
	out := jsonList{
		Filter:    snap.Filter,
		Entries:   make([]jsonEntry, 0, len(snap.Visible)),
		Total:     len(snap.Entries),
		Completed: snap.Completed,
	}
	if len(snap.Entries) > 0 {
		out.Left = ui.ItemsLeft(snap.Total)
	}
	for _, v := range snap.Visible {
		out.Entries = append(out.Entries, jsonEntry{
			Index:       v.Index + 1,
			ID:          v.Entry.ID,
			Description: v.Entry.Description,
			Completed:   v.Entry.Completed,
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
