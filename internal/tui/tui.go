// Package tui is the interactive presentation layer. It renders service
// snapshots and turns key presses into service commands.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/app"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// listItem adapts a visible entry to bubbles/list.Item
type listItem struct {
	view state.View
}

func (i listItem) TitleText() string {
	box := boxUnchecked
	if i.view.Entry.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.view.Entry.Description)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.TitleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.view.Entry.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	e := it.view.Entry

	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := e.Description
	if e.Completed {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(e.Description)
	}
	if it.view.Editing {
		textStyled = editingStyle.Render(e.Description + " ✎")
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Model is the Bubble Tea model; every change goes through the service.
type Model struct {
	ctx  context.Context
	svc  *app.Service
	snap app.Snapshot
	keys keyMap

	list   list.Model
	ti     textinput.Model // shared text input model (used for add & edit)
	mode   mode
	status string // last inline message (validation, clipboard)
	err    error  // fatal; set before quitting

	width, height int
}

// New builds the model from the service's current snapshot.
func New(ctx context.Context, svc *app.Service) Model {
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full
	// quitting is handled here so esc can cancel add/edit first
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:  ctx,
		svc:  svc,
		keys: keys,
		list: l,
		ti:   ti,
	}
	m.refresh(svc.Snapshot())
	return m
}

// Run starts the TUI and blocks until the user quits. A persistence failure
// ends the program and is returned.
func Run(ctx context.Context, svc *app.Service) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err is the fatal error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Snapshot is the state the model is currently rendering.
func (m Model) Snapshot() app.Snapshot { return m.snap }

func (m *Model) refresh(snap app.Snapshot) {
	sel := m.list.Index()
	m.snap = snap
	items := make([]list.Item, 0, len(snap.Visible))
	for _, v := range snap.Visible {
		items = append(items, listItem{view: v})
	}
	m.list.SetItems(items)
	switch {
	case len(items) == 0:
	case sel >= len(items):
		m.list.Select(len(items) - 1)
	default:
		m.list.Select(sel)
	}
}

// apply records the snapshot of a command, or quits on failure.
func (m Model) apply(snap app.Snapshot, err error) (tea.Model, tea.Cmd) {
	m.refresh(snap)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// selected returns the position of the highlighted entry in the full list.
func (m Model) selected() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.view.Index, true
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.list.SetSize(ws.Width-4, m.listHeight())
		m.ti.Width = ws.Width - 10
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.status = ""

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Add):
		m.mode = modeAdd
		m.ti.SetValue("")
		m.ti.Placeholder = "What needs to be done?"
		m.list.SetSize(m.list.Width(), m.listHeight())
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, m.keys.ToggleAll):
		return m.apply(m.svc.ToggleAll(m.ctx))
	case key.Matches(km, m.keys.NextFilter):
		return m.apply(m.svc.SetFilter(m.ctx, nextFilter(m.snap.Filter)))
	case key.Matches(km, m.keys.All):
		return m.apply(m.svc.SetFilter(m.ctx, model.All))
	case key.Matches(km, m.keys.Active):
		return m.apply(m.svc.SetFilter(m.ctx, model.Active))
	case key.Matches(km, m.keys.Completed):
		return m.apply(m.svc.SetFilter(m.ctx, model.Completed))
	}

	idx, ok := m.selected()
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Toggle):
		return m.apply(m.svc.Toggle(m.ctx, idx))
	case key.Matches(km, m.keys.Remove):
		return m.apply(m.svc.Remove(m.ctx, idx))
	case key.Matches(km, m.keys.Edit):
		snap, err := m.svc.ToggleEdit(m.ctx, idx)
		next, cmd := m.apply(snap, err)
		if err != nil {
			return next, cmd
		}
		nm := next.(Model)
		return nm.focusEdit()
	case key.Matches(km, m.keys.Copy):
		if err := clipboard.WriteAll(m.snap.Entries[idx].Description); err != nil {
			m.status = errorStyle.Render("copy failed: " + err.Error())
		} else {
			m.status = successStyle.Render("copied")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// focusEdit moves input focus to the edit field, prefilled from the edit buffer.
func (m Model) focusEdit() (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.ti.SetValue(m.snap.EditValue)
	m.ti.CursorEnd()
	m.ti.Placeholder = "Edit item title..."
	m.list.SetSize(m.list.Width(), m.listHeight())
	cmd := m.ti.Focus()
	return m, cmd
}

func (m Model) leaveInput() Model {
	m.mode = modeList
	m.ti.SetValue("")
	m.ti.Blur()
	m.list.SetSize(m.list.Width(), m.listHeight())
	return m
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.ti.Value()) == "" {
				m.status = errorStyle.Render("Title cannot be empty")
				return m, nil
			}
			m.status = ""
			text := m.ti.Value()
			m = m.leaveInput()
			next, cmd := m.apply(m.svc.Add(m.ctx, text))
			nm := next.(Model)
			if n := len(nm.list.Items()); n > 0 && nm.snap.Filter != model.Completed {
				nm.list.Select(n - 1)
			}
			return nm, cmd
		case tea.KeyEsc:
			m.status = ""
			return m.leaveInput(), nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			idx := m.snap.EditIndex
			text := m.ti.Value()
			m = m.leaveInput()
			if idx < 0 {
				return m, nil
			}
			return m.apply(m.svc.Edit(m.ctx, idx, text))
		case tea.KeyEsc:
			m = m.leaveInput()
			return m.apply(m.svc.CancelEdit(m.ctx))
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.snap = m.svc.SetEditValue(m.ti.Value())
	return m, cmd
}

func nextFilter(f model.Filter) model.Filter {
	all := model.Filters()
	for i, x := range all {
		if x == f {
			return all[(i+1)%len(all)]
		}
	}
	return model.All
}

func (m Model) listHeight() int {
	h := m.height
	if h == 0 {
		h = 24
	}
	h -= 8
	if m.mode != modeList {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s   %s %d  %s %d  %s %d\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), m.snap.Completed,
		pendingStyle.Render("•"), m.snap.Total,
		accentStyle.Render("Total"), len(m.snap.Entries),
	))
	b.WriteString(m.tabs() + "\n\n")

	if len(m.snap.Visible) == 0 {
		b.WriteString(mutedStyle.Render("  no items") + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	if m.mode != modeList {
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		inputLine := title + "\n" + m.ti.View()
		b.WriteString(panelString(inputLine) + "\n")
	}

	if len(m.snap.Entries) > 0 {
		b.WriteString(mutedStyle.Render(ui.ItemsLeft(m.snap.Total)) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(helpStyle.Render("Press e to edit an entry"))
	return panelString(b.String())
}

func (m Model) tabs() string {
	tabs := make([]string, 0, 3)
	for i, f := range model.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Title())
		if f == m.snap.Filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, mutedStyle.Render("|"))
}
