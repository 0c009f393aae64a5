// Package client is a typed Go client for the taskboard REST API. It holds
// the session token obtained from Register or Login and attaches it as a
// bearer credential to every subsequent call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client calls the taskboard API. It is safe for sequential use; calls are
// independent request/response cycles with no client-side coordination.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken seeds the client with a previously issued session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:4000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the session token currently held by the client.
func (c *Client) Token() string { return c.token }

// SetToken replaces the session token.
func (c *Client) SetToken(token string) { c.token = token }

// --- API types (mirror the server's JSON contracts) ---

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPage is one page of tasks plus the resolved pagination values.
type TaskPage struct {
	Items []Task `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// FieldIssue is a single field-level validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Details []FieldIssue
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// --- Auth ---

type authResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Register creates an account and stores the returned session token.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var res authResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return res.User, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var res authResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return res.User, nil
}

// --- Profile ---

type profileResult struct {
	User *User `json:"user"`
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var res profileResult
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name string) (*User, error) {
	var res profileResult
	if err := c.do(ctx, http.MethodPut, "/api/profile", map[string]string{"name": name}, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// --- Tasks ---

// ListTasksParams are the optional query parameters of the list endpoint.
// Zero values are omitted and resolved to server defaults.
type ListTasksParams struct {
	Query  string
	Status string
	Page   int
	Limit  int
}

func (c *Client) ListTasks(ctx context.Context, params ListTasksParams) (*TaskPage, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("q", params.Query)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page TaskPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type taskResult struct {
	Task *Task `json:"task"`
}

func (c *Client) CreateTask(ctx context.Context, title, description, status string) (*Task, error) {
	body := map[string]string{"title": title}
	if description != "" {
		body["description"] = description
	}
	if status != "" {
		body["status"] = status
	}

	var res taskResult
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &res); err != nil {
		return nil, err
	}
	return res.Task, nil
}

// TaskPatch carries the fields of a partial update; nil fields are omitted
// from the request body and left untouched by the server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	var res taskResult
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, patch, &res); err != nil {
		return nil, err
	}
	return res.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

// Health reports whether the API answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do issues one request and decodes the response into out. Non-2xx
// responses are decoded into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Error   string       `json:"error"`
		Details []FieldIssue `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
		apiErr.Details = envelope.Details
	}
	return apiErr
}
