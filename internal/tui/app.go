package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/classboard/internal/logger"
	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/roster"
	"github.com/idilsaglam/classboard/internal/theme"
	"github.com/idilsaglam/classboard/internal/todo"
	"github.com/idilsaglam/classboard/internal/ui"
)

// StoreChangedMsg tells the dashboard the todo store was written by someone else.
type StoreChangedMsg struct{}

// todoItem adapts model.Todo to bubbles/list.Item
type todoItem struct {
	model.Todo
}

func (i todoItem) Title() string       { return i.Text }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.Text }

// itemDelegate renders todos on a single line in the current theme.
type itemDelegate struct {
	theme *theme.Provider
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	s := ui.StylesFor(d.theme.Mode())
	prefix := "  "
	if index == m.Index() {
		prefix = s.Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.TodoLine(s, it.Todo))
}

type keyMap struct {
	Theme, Filter, Add, Toggle, Delete, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "attendance filter")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "done")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the dashboard: the student roster on top, the todo list below, both
// drawn in the shared theme. The panels are injected; App only drives them.
type App struct {
	theme  *theme.Provider
	roster *roster.Panel
	todos  *todo.Panel
	log    *logger.Logger

	keys   keyMap
	list   list.Model
	input  textinput.Model
	adding bool
	status string // last persistence error, cleared by the next successful action

	width, height int
	cancels       []func()
}

// New wires the dashboard to its panels and subscribes to their changes.
func New(tp *theme.Provider, rp *roster.Panel, tdp *todo.Panel, log *logger.Logger) *App {
	a := &App{theme: tp, roster: rp, todos: tdp, log: log, keys: defaultKeys()}

	l := list.New(nil, itemDelegate{theme: tp}, 76, 10)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// f and d belong to the dashboard, not to paging
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h/pgup", "prev page"))
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.HelpStyle = ui.StylesFor(tp.Mode()).Help
	l.Styles.NoItems = lipgloss.NewStyle().Faint(true)
	extra := func() []key.Binding {
		return []key.Binding{a.keys.Add, a.keys.Toggle, a.keys.Delete, a.keys.Theme, a.keys.Filter, a.keys.Quit}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra
	a.list = l

	a.input = textinput.New()
	a.input.Prompt = "> "
	a.input.Placeholder = "Enter task"

	a.setItems(tdp.Items())
	a.cancels = append(a.cancels,
		tdp.Subscribe(a.setItems),
		tp.Subscribe(func(m theme.Mode) {
			a.log.WithFields(map[string]any{"theme": m.String()}).Debug("theme toggled")
		}),
		rp.Subscribe(func(on bool) {
			a.log.WithFields(map[string]any{"filtered": on}).Debug("attendance filter changed")
		}),
	)
	return a
}

// Close drops the panel subscriptions.
func (a *App) Close() {
	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil
}

func (a *App) setItems(items []model.Todo) {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, todoItem{it})
	}
	a.list.SetItems(li)
	// a delete at the tail must not strand the cursor past the end
	if n := len(li); n > 0 && a.list.Index() >= n {
		a.list.Select(n - 1)
	}
}

func (a *App) selected() (model.Todo, bool) {
	it, ok := a.list.SelectedItem().(todoItem)
	return it.Todo, ok
}

// report records err for the status line; nil clears it.
func (a *App) report(err error) {
	if err == nil {
		a.status = ""
		return
	}
	a.status = "save failed: " + err.Error()
}

// Adding reports whether the add-task input is open.
func (a *App) Adding() bool { return a.adding }

// Status is the current status-line message, empty when all is well.
func (a *App) Status() string { return a.status }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.list.SetSize(max(msg.Width-4, 20), a.listHeight())
		return a, nil

	case StoreChangedMsg:
		if _, err := a.todos.Reload(); err != nil {
			a.log.Error(err, "reload todo list")
			a.status = "reload failed: " + err.Error()
		}
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateAdding(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Theme):
			a.theme.Toggle()
			return a, nil
		case key.Matches(msg, a.keys.Filter):
			a.roster.ToggleFilter()
			return a, nil
		case key.Matches(msg, a.keys.Add):
			a.adding = true
			a.input.SetValue("")
			return a, a.input.Focus()
		case key.Matches(msg, a.keys.Toggle):
			if t, ok := a.selected(); ok {
				_, err := a.todos.Toggle(t.ID)
				a.report(err)
			}
			return a, nil
		case key.Matches(msg, a.keys.Delete):
			if t, ok := a.selected(); ok {
				_, err := a.todos.Remove(t.ID)
				a.report(err)
			}
			return a, nil
		}
	}

	if a.adding {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.adding = false
		a.input.SetValue("")
		a.input.Blur()
		return a, nil
	case "enter":
		_, added, err := a.todos.Add(a.input.Value())
		a.report(err)
		if !added {
			// blank input is ignored silently; a failed save keeps the text for retry
			return a, nil
		}
		a.input.SetValue("")
		a.input.Blur()
		a.adding = false
		a.list.Select(len(a.list.Items()) - 1)
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) listHeight() int {
	// roster cards and headers take roughly the top 18 rows
	return max(a.height-18, 6)
}

// Run starts the dashboard and blocks until the user quits or ctx ends.
// When watch is non-nil it is started with a callback that makes the
// dashboard reload the todo list.
func Run(ctx context.Context, a *App, watch func(ctx context.Context, onChange func()) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(a, opts...)
	a.log.WithFields(map[string]any{"theme": a.theme.Mode().String(), "todos": a.todos.Len()}).Info("dashboard started")
	if watch != nil {
		if err := watch(ctx, func() { p.Send(StoreChangedMsg{}) }); err != nil {
			a.log.Error(err, "store watch unavailable; external edits will not be picked up")
		}
	}
	_, err := p.Run()
	if err != nil {
		return err
	}
	a.log.Info("dashboard closed")
	return nil
}
