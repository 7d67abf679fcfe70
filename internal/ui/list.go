package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
)

// ListOptions tune how a snapshot is rendered.
type ListOptions struct {
	Group bool // pending and done in separate sections
	Width int  // terminal width; descriptions are cut to fit
}

// ItemsLeft is the footer text, e.g. "1 item left" or "3 items left".
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

// Header shows the counts, the active filter and a progress bar.
func Header(snap app.Snapshot) []string {
	t := Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), snap.Completed,
		C(t.Pending, t.SymUnchecked), snap.Total,
		C(t.Accent, "Total"), len(snap.Entries),
		C(t.Muted, "["+snap.Filter.String()+"]"),
	)
	return []string{
		header,
		C(t.Muted, ProgressBar(t, snap.Completed, len(snap.Entries), 28)),
	}
}

// Lines renders the visible entries of snap as panel lines. Numbers shown are
// 1-based positions in the full list, so they stay valid for done/rm/edit.
func Lines(snap app.Snapshot, opt ListOptions) []string {
	lines := Header(snap)
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, groupLines(snap.Visible, opt.Width)...)
	} else {
		lines = append(lines, flatLines(snap.Visible, opt.Width)...)
	}
	if len(snap.Entries) > 0 {
		lines = append(lines, "", C(Current().Muted, ItemsLeft(snap.Total)))
	}
	return lines
}

// PrintList draws snap inside a panel.
func PrintList(w io.Writer, snap app.Snapshot, opt ListOptions) {
	lines := Lines(snap, opt)
	lines = append(lines, "", C(Current().Muted, "Tip: add with `todo add \"Buy milk\"`, edit with `todo edit 1`"))
	Panel(w, Current(), lines)
}

func row(v state.View, width int) string {
	t := Current()
	box, c := t.BoxUnchecked, t.Muted
	if v.Entry.Completed {
		box, c = t.BoxChecked, t.Success
	}
	idx := fmt.Sprintf("%2d.", v.Index+1)
	text := fit(v.Entry.Description, width)
	if v.Editing {
		text = C(t.Accent, text+" "+t.SymEditing)
	}
	return fmt.Sprintf("%s %s %s", C(t.Muted, idx), C(c, box), text)
}

// fit leaves room for the index, box and panel border.
func fit(s string, width int) string {
	const chrome = 12
	if width <= 0 {
		width = 80
	}
	limit := width - chrome
	if limit < 10 {
		limit = 10
	}
	return truncate.StringWithTail(s, uint(limit), "...")
}

func flatLines(views []state.View, width int) []string {
	if len(views) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, row(v, width))
	}
	return out
}

func groupLines(views []state.View, width int) []string {
	var pend, done []state.View
	for _, v := range views {
		if v.Entry.Completed {
			done = append(done, v)
		} else {
			pend = append(pend, v)
		}
	}
	section := func(title string, vs []state.View) []string {
		lines := []string{C(Current().Accent, title)}
		if len(vs) == 0 {
			return append(lines, C(Current().Muted, "(none)"))
		}
		for _, v := range vs {
			lines = append(lines, row(v, width))
		}
		return lines
	}
	lines := section(model.Active.Title(), pend)
	lines = append(lines, "")
	return append(lines, section(model.Completed.Title(), done)...)
}

// PrintTable renders the visible entries as aligned columns.
func PrintTable(w io.Writer, snap app.Snapshot) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Done"), bold.Sprint("Description"), bold.Sprint("ID"))
	for _, v := range snap.Visible {
		done := Current().BoxUnchecked
		if v.Entry.Completed {
			done = Current().BoxChecked
		}
		tbl.AddRow(strconv.Itoa(v.Index+1), done, v.Entry.Description, shortID(v.Entry.ID))
	}
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
	fmt.Fprintln(w, C(Current().Muted, ItemsLeft(snap.Total)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
