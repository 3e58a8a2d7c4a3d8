// Package api is the HTTP client for the remote task and suggestion
// services. It is a thin transport wrapper: every call either returns the
// parsed server payload or a typed *Error, never partial data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"taskdeck/internal/task"
)

// Error is the failure type for every remote call. StatusCode is zero for
// transport-level failures. Detail carries the server's error message when
// the response body had one.
type Error struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client talks to the task service at a fixed base URL. The zero value is
// not usable; construct with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("api: invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// List returns all tasks in server order.
func (c *Client) List(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := c.do(ctx, "list tasks", http.MethodGet, "/tasks/", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a task with the given title and returns the server's
// representation, including the assigned id.
func (c *Client) Create(ctx context.Context, title string) (task.Task, error) {
	body := task.Task{Title: title, Completed: false}
	var created task.Task
	if err := c.do(ctx, "create task", http.MethodPost, "/tasks/", body, &created); err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// Update replaces the title and completion flag of the task with the given
// id and returns the server's representation.
func (c *Client) Update(ctx context.Context, id int, title string, completed bool) (task.Task, error) {
	body := task.Task{Title: title, Completed: completed}
	var updated task.Task
	path := fmt.Sprintf("/tasks/%d", id)
	if err := c.do(ctx, "update task", http.MethodPut, path, body, &updated); err != nil {
		return task.Task{}, err
	}
	return updated, nil
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/tasks/%d", id)
	return c.do(ctx, "delete task", http.MethodDelete, path, nil, nil)
}

// Suggest asks the suggestion service for advisory text on a task title.
// The title travels as a query parameter, matching the service contract.
func (c *Client) Suggest(ctx context.Context, title string) (string, error) {
	path := "/suggestions/?title=" + url.QueryEscape(title)
	var payload struct {
		Suggestion string `json:"suggestion"`
	}
	if err := c.do(ctx, "get suggestion", http.MethodPost, path, nil, &payload); err != nil {
		return "", err
	}
	return payload.Suggestion, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Correlation id for the diagnostic log, nothing more. Responses are
	// still applied in arrival order.
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	logger := c.logger.With("op", op, "request_id", requestID)
	logger.Debug("issuing request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readDetail(resp.Body)
		logger.Debug("request rejected", "status", resp.StatusCode, "detail", detail)
		return &Error{Op: op, StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// readDetail extracts the {"detail": ...} message the service attaches to
// error responses. Anything unparseable is ignored.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
