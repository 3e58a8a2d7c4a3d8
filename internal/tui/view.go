package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"taskdeck/internal/task"
)

// visible returns the rows the list shows: the whole collection, or the
// fuzzy-matched subset while a filter is set. Filtering never touches the
// collection itself.
func (a *App) visible() []task.Task {
	all := a.tasks.All()
	if a.filter == "" {
		return all
	}

	titles := make([]string, len(all))
	for i, t := range all {
		titles[i] = t.Title
	}
	matches := fuzzy.Find(a.filter, titles)

	out := make([]task.Task, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}

// View implements tea.Model. It renders exactly one of the three
// top-level states: the loading screen, the load-failure banner, or the
// loaded list.
func (a *App) View() string {
	header := titleStyle.Render("taskdeck")

	switch a.phase {
	case phaseLoading:
		return appStyle.Render(fmt.Sprintf("%s\n\n%s Loading tasks…", header, a.spinner.View()))

	case phaseLoadFailed:
		banner := errorBannerStyle.Render("Could not load tasks from the server.")
		detail := ""
		if a.loadErr != nil {
			detail = "\n" + mutedStyle.Render(a.loadErr.Error())
		}
		return appStyle.Render(fmt.Sprintf("%s\n\n%s%s\n\n%s", header, banner, detail, mutedStyle.Render("q: quit")))
	}

	var b strings.Builder
	b.WriteString(header)
	if a.filter != "" || a.mode == modeFilter {
		b.WriteString("   " + mutedStyle.Render("filter: ") + a.filterInput.View())
	}
	b.WriteString("\n\n")

	b.WriteString(a.renderList())
	b.WriteString("\n")

	if a.mode == modeAdd {
		b.WriteString("\n" + mutedStyle.Render("new: ") + a.addInput.View() + "\n")
	} else if v := a.addInput.Value(); v != "" {
		// Unsent input stays visible so nothing typed is ever lost.
		b.WriteString("\n" + mutedStyle.Render("new: "+v) + "\n")
	}

	if s := a.renderSuggestion(); s != "" {
		b.WriteString("\n" + s + "\n")
	}

	b.WriteString("\n" + a.renderFooter())
	return appStyle.Render(b.String())
}

func (a *App) renderList() string {
	visible := a.visible()
	if len(visible) == 0 {
		if a.filter != "" {
			return mutedStyle.Render("No tasks match the filter.")
		}
		return mutedStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range visible {
		cursor := " "
		if i == a.cursor {
			cursor = cursorStyle.String()
		}

		mark := openMarkStyle.String()
		if t.Completed {
			mark = doneMarkStyle.String()
		}

		if a.mode == modeEdit && a.editing != nil && a.editing.TaskID == t.ID {
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, a.editInput.View()))
			continue
		}

		title := t.Title
		if t.Completed {
			title = completedTitleStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, title))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (a *App) renderSuggestion() string {
	if a.suggestLoading {
		return fmt.Sprintf("%s Fetching suggestion…", a.spinner.View())
	}
	if a.suggestion == nil {
		return ""
	}
	head := suggestionTitleStyle.Render("Suggestion · " + a.suggestion.For)
	body := lipgloss.JoinVertical(lipgloss.Left, head, a.suggestion.Text)
	return suggestionStyle.Render(body) + "\n" + mutedStyle.Render("x: dismiss")
}

func (a *App) renderFooter() string {
	help := "a: add • space: toggle • e: edit • d: delete • s: suggest • /: filter • r: refresh • q: quit"
	switch a.mode {
	case modeAdd:
		help = "enter: create • esc: back"
	case modeEdit:
		help = "enter: save • esc: cancel • ↑/↓: edit neighbor"
	case modeFilter:
		help = "enter: apply • esc: clear"
	}

	refreshed := ""
	if !a.lastRefresh.IsZero() {
		refreshed = "  ·  refreshed " + humanize.Time(a.lastRefresh)
	}
	return mutedStyle.Render(help + refreshed)
}
