// Package tui is the interactive session over the remote task service:
// one full-screen Bubble Tea program owning the task collection, the
// inline-edit state, and the suggestion display slot.
//
// All remote calls run as commands and resolve into messages; shared
// state changes only when a message is handled, so the single program
// loop serializes every mutation. Requests are never cancelled: a
// response that arrives after the task it refers to is gone is applied
// by id match and falls through as a no-op.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/suggest"
	"taskdeck/internal/task"
)

type phase int

const (
	phaseLoading phase = iota
	phaseLoaded
	phaseLoadFailed
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeFilter
)

// App is the Bubble Tea model for the session.
type App struct {
	client Client
	logger *slog.Logger

	phase   phase
	loadErr error

	tasks  task.Collection
	cursor int

	mode     mode
	addInput textinput.Model

	editing   *task.EditSession
	editInput textinput.Model

	filter      string
	filterInput textinput.Model

	suggestion     *task.Suggestion
	suggestLoading bool

	spinner     spinner.Model
	lastRefresh time.Time
	now         func() time.Time

	width  int
	height int
}

// NewApp creates the session model around a remote client.
func NewApp(client Client, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = mutedStyle

	addInput := textinput.New()
	addInput.Placeholder = "What needs doing?"
	addInput.CharLimit = 200

	filterInput := textinput.New()
	filterInput.Placeholder = "filter"
	filterInput.CharLimit = 64

	return &App{
		client:      client,
		logger:      logger,
		phase:       phaseLoading,
		mode:        modeList,
		addInput:    addInput,
		filterInput: filterInput,
		spinner:     s,
		now:         time.Now,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadCmd(),
	)
}

// Messages produced by resolved remote calls.
type tasksLoadedMsg struct{ tasks []task.Task }
type loadFailedMsg struct{ err error }
type taskCreatedMsg struct{ task task.Task }
type taskUpdatedMsg struct{ task task.Task }
type taskDeletedMsg struct{ id int }
type mutationFailedMsg struct {
	op  string
	err error
}
type suggestionMsg struct {
	forTitle string
	raw      string
}
type suggestionFailedMsg struct{ err error }

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := a.client.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (a *App) createCmd(title string) tea.Cmd {
	return func() tea.Msg {
		created, err := a.client.Create(context.Background(), title)
		if err != nil {
			return mutationFailedMsg{op: "create", err: err}
		}
		return taskCreatedMsg{task: created}
	}
}

func (a *App) updateCmd(id int, title string, completed bool) tea.Cmd {
	return func() tea.Msg {
		updated, err := a.client.Update(context.Background(), id, title, completed)
		if err != nil {
			return mutationFailedMsg{op: "update", err: err}
		}
		return taskUpdatedMsg{task: updated}
	}
}

func (a *App) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.Delete(context.Background(), id); err != nil {
			return mutationFailedMsg{op: "delete", err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (a *App) suggestCmd(title string) tea.Cmd {
	return func() tea.Msg {
		raw, err := a.client.Suggest(context.Background(), title)
		if err != nil {
			return suggestionFailedMsg{err: err}
		}
		return suggestionMsg{forTitle: title, raw: raw}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.addInput.Width = max(20, msg.Width-8)
		a.editInput.Width = max(20, msg.Width-12)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tasksLoadedMsg:
		a.phase = phaseLoaded
		a.loadErr = nil
		a.tasks.Replace(msg.tasks)
		a.lastRefresh = a.now()
		a.clampCursor()
		return a, nil

	case loadFailedMsg:
		a.phase = phaseLoadFailed
		a.loadErr = msg.err
		return a, nil

	case taskCreatedMsg:
		a.tasks.Append(msg.task)
		a.addInput.Reset()
		return a, nil

	case taskUpdatedMsg:
		a.tasks.ReplaceByID(msg.task)
		return a, nil

	case taskDeletedMsg:
		a.tasks.RemoveByID(msg.id)
		if a.editing != nil && a.editing.TaskID == msg.id {
			a.closeEdit()
		}
		a.clampCursor()
		return a, nil

	case mutationFailedMsg:
		// Diagnostic channel only. The collection and any pending input
		// stay exactly as they were.
		a.logger.Warn("mutation failed", "op", msg.op, "error", msg.err)
		return a, nil

	case suggestionMsg:
		// The latest arrival wins, even if it belongs to a superseded
		// request.
		a.suggestion = &task.Suggestion{For: msg.forTitle, Text: suggest.Format(msg.raw)}
		a.suggestLoading = false
		return a, nil

	case suggestionFailedMsg:
		a.logger.Warn("suggestion request failed", "error", msg.err)
		result := suggest.ErrorResult()
		a.suggestion = &result
		a.suggestLoading = false
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.phase {
	case phaseLoading, phaseLoadFailed:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.mode {
	case modeAdd:
		return a.handleAddKey(msg)
	case modeEdit:
		return a.handleEditKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}

	case "a", "n":
		a.mode = modeAdd
		return a, a.addInput.Focus()

	case " ":
		if t, ok := a.selected(); ok {
			return a, a.updateCmd(t.ID, t.Title, !t.Completed)
		}

	case "e", "enter":
		if t, ok := a.selected(); ok {
			return a, a.beginEdit(t)
		}

	case "d":
		if t, ok := a.selected(); ok {
			return a, a.deleteCmd(t.ID)
		}

	case "s":
		// The trigger is disabled while a request is in flight; every
		// other action stays available.
		if a.suggestLoading {
			return a, nil
		}
		if t, ok := a.selected(); ok {
			a.suggestion = nil
			a.suggestLoading = true
			return a, a.suggestCmd(t.Title)
		}

	case "x":
		a.suggestion = nil

	case "/":
		a.mode = modeFilter
		a.filterInput.SetValue(a.filter)
		return a, a.filterInput.Focus()

	case "r":
		a.phase = phaseLoading
		return a, a.loadCmd()
	}

	return a, nil
}

func (a *App) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Typed text survives; only focus moves back to the list.
		a.mode = modeList
		a.addInput.Blur()
		return a, nil

	case "enter":
		title := a.addInput.Value()
		if strings.TrimSpace(title) == "" {
			return a, nil
		}
		return a, a.createCmd(title)
	}

	var cmd tea.Cmd
	a.addInput, cmd = a.addInput.Update(msg)
	return a, cmd
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.closeEdit()
		return a, nil

	case "enter", "tab":
		// Commit key and focus loss both trigger the same save.
		return a, a.commitEdit()

	case "up", "down":
		// Moving to another row while editing silently drops the draft
		// and opens an edit session there.
		visible := a.visible()
		next := a.cursor
		if msg.String() == "up" && a.cursor > 0 {
			next--
		}
		if msg.String() == "down" && a.cursor < len(visible)-1 {
			next++
		}
		if next == a.cursor {
			return a, nil
		}
		a.cursor = next
		a.closeEdit()
		if t, ok := a.selected(); ok {
			return a, a.beginEdit(t)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editInput, cmd = a.editInput.Update(msg)
	if a.editing != nil {
		a.editing.Draft = a.editInput.Value()
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.filter = ""
		a.filterInput.Reset()
		a.filterInput.Blur()
		a.mode = modeList
		a.clampCursor()
		return a, nil

	case "enter":
		a.filterInput.Blur()
		a.mode = modeList
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.filter = a.filterInput.Value()
	a.clampCursor()
	return a, cmd
}

// beginEdit opens the single edit slot for t, replacing any session that
// was already open.
func (a *App) beginEdit(t task.Task) tea.Cmd {
	a.editing = &task.EditSession{TaskID: t.ID, Draft: t.Title}

	input := textinput.New()
	input.CharLimit = 200
	input.Width = max(20, a.width-12)
	input.SetValue(t.Title)
	input.CursorEnd()
	a.editInput = input
	a.mode = modeEdit
	return a.editInput.Focus()
}

// commitEdit issues the save and closes the session immediately. The
// session does not reopen when the save fails; the title simply stays
// unchanged.
func (a *App) commitEdit() tea.Cmd {
	session := a.editing
	a.closeEdit()
	if session == nil {
		return nil
	}
	current, ok := a.tasks.ByID(session.TaskID)
	if !ok {
		return nil
	}
	return a.updateCmd(session.TaskID, session.Draft, current.Completed)
}

func (a *App) closeEdit() {
	a.editing = nil
	a.editInput.Blur()
	if a.mode == modeEdit {
		a.mode = modeList
	}
}

// selected returns the task under the cursor within the visible rows.
func (a *App) selected() (task.Task, bool) {
	visible := a.visible()
	if a.cursor < 0 || a.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[a.cursor], true
}

func (a *App) clampCursor() {
	if n := len(a.visible()); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}
