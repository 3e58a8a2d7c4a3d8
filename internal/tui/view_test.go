package tui

import (
	"strings"
	"testing"

	"taskdeck/internal/task"
)

func TestViewLoadingState(t *testing.T) {
	a := NewApp(newFakeClient(), testLogger())

	view := a.View()
	if !strings.Contains(view, "Loading tasks") {
		t.Errorf("loading view missing spinner line:\n%s", view)
	}
	if strings.Contains(view, "No tasks yet") {
		t.Error("loading view rendered the empty-list affordance")
	}
}

func TestViewEmptyCollectionShowsAffordance(t *testing.T) {
	a := loadedApp(t, newFakeClient())

	view := a.View()
	if !strings.Contains(view, "No tasks yet") {
		t.Errorf("empty loaded view missing affordance:\n%s", view)
	}
}

func TestViewListShowsCompletionMarks(t *testing.T) {
	a := loadedApp(t, newFakeClient(
		task.Task{ID: 1, Title: "open item"},
		task.Task{ID: 2, Title: "done item", Completed: true},
	))

	view := a.View()
	for _, want := range []string{"open item", "done item"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q:\n%s", want, view)
		}
	}
}

func TestViewPreservesUnsentInput(t *testing.T) {
	a := loadedApp(t, newFakeClient(task.Task{ID: 1, Title: "x"}))

	a = press(t, a, keyRune('a'))
	a = typeText(t, a, "half typed")
	a = press(t, a, keyEsc)

	if !strings.Contains(a.View(), "half typed") {
		t.Error("unsent input not visible after leaving add mode")
	}
}

func TestViewSuggestionPanel(t *testing.T) {
	client := newFakeClient(task.Task{ID: 1, Title: "plan trip"})
	client.suggestion = "**Pack** light"
	a := loadedApp(t, client)

	a = press(t, a, keyRune('s'))
	view := a.View()
	if !strings.Contains(view, "Suggestion") || !strings.Contains(view, "Pack light") {
		t.Errorf("suggestion panel missing from view:\n%s", view)
	}
}
