package task

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectionAppendKeepsOrder(t *testing.T) {
	var c Collection
	c.Replace([]Task{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}})
	c.Append(Task{ID: 3, Title: "third"})

	want := []Task{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
		{ID: 3, Title: "third"},
	}
	if diff := cmp.Diff(want, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionReplaceByID(t *testing.T) {
	var c Collection
	c.Replace([]Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})

	c.ReplaceByID(Task{ID: 2, Title: "b", Completed: true})
	got, ok := c.ByID(2)
	if !ok || !got.Completed {
		t.Fatalf("ByID(2) = %+v, %t, want completed task", got, ok)
	}

	// an id that is no longer present must be a no-op, not an append
	c.ReplaceByID(Task{ID: 9, Title: "ghost"})
	if c.Len() != 2 {
		t.Fatalf("Len() = %d after stale replace, want 2", c.Len())
	}
}

func TestCollectionRemoveByID(t *testing.T) {
	var c Collection
	c.Replace([]Task{{ID: 1}, {ID: 2}, {ID: 3}})

	c.RemoveByID(2)
	want := []Task{{ID: 1}, {ID: 3}}
	if diff := cmp.Diff(want, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	c.RemoveByID(2)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d after removing absent id, want 2", c.Len())
	}
}

func TestCollectionReplaceCopiesInput(t *testing.T) {
	src := []Task{{ID: 1, Title: "original"}}
	var c Collection
	c.Replace(src)
	src[0].Title = "mutated"

	got, _ := c.ByID(1)
	if got.Title != "original" {
		t.Errorf("collection aliased caller slice: got title %q", got.Title)
	}
}
