package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/internal/task"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("NewClient with blank base URL: expected error")
	}
}

func TestList(t *testing.T) {
	want := []task.Task{
		{ID: 1, Title: "write report", Completed: false},
		{ID: 2, Title: "send invoice", Completed: true},
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tasks/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		json.NewEncoder(w).Encode(want)
	})

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in task.Task
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if in.Title != "buy milk" || in.Completed {
			t.Errorf("unexpected create body: %+v", in)
		}
		json.NewEncoder(w).Encode(task.Task{ID: 7, Title: in.Title})
	})

	got, err := client.Create(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != 7 || got.Title != "buy milk" {
		t.Errorf("Create() = %+v, want id 7 with same title", got)
	}
}

func TestUpdate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/tasks/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in task.Task
		json.NewDecoder(r.Body).Decode(&in)
		json.NewEncoder(w).Encode(task.Task{ID: 3, Title: in.Title, Completed: in.Completed})
	})

	got, err := client.Update(context.Background(), 3, "renamed", true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := task.Task{ID: 3, Title: "renamed", Completed: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Delete(context.Background(), 12); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotPath != "DELETE /tasks/12" {
		t.Errorf("request = %q, want DELETE /tasks/12", gotPath)
	}
}

func TestSuggest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/suggestions/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("title"); got != "plan trip" {
			t.Errorf("title query = %q, want %q", got, "plan trip")
		}
		json.NewEncoder(w).Encode(map[string]string{"suggestion": "1. Pack"})
	})

	got, err := client.Suggest(context.Background(), "plan trip")
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got != "1. Pack" {
		t.Errorf("Suggest() = %q, want %q", got, "1. Pack")
	}
}

func TestErrorCarriesStatusAndDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Task not found"})
	})

	_, err := client.Update(context.Background(), 99, "x", false)
	if err == nil {
		t.Fatal("Update: expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "Task not found" {
		t.Errorf("error = %+v, want status 404 with detail", apiErr)
	}
}

func TestTransportFailureIsTyped(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	server.Close()

	_, err = client.List(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.StatusCode != 0 || apiErr.Err == nil {
		t.Errorf("transport error = %+v, want wrapped cause and zero status", apiErr)
	}
}
