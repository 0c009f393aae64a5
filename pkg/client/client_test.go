package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_RegisterStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/register" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "a@x.com" || body["password"] != "longenough" || body["name"] != "A" {
			t.Fatalf("unexpected body: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"tok123","user":{"id":"u1","email":"a@x.com","name":"A"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Register(context.Background(), "a@x.com", "longenough", "A")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if c.Token() != "tok123" {
		t.Fatalf("expected token to be stored, got %q", c.Token())
	}
}

func TestClient_BearerHeaderAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("expected bearer header, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("q") != "report" || q.Get("status") != "done" || q.Get("page") != "2" || q.Get("limit") != "5" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"t1","title":"T1","status":"done"}],"total":11,"page":2,"limit":5}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok123"))
	page, err := c.ListTasks(context.Background(), ListTasksParams{Query: "report", Status: "done", Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if page.Total != 11 || len(page.Items) != 1 || page.Items[0].Status != "done" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestClient_DecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid input","details":[{"field":"title","message":"is required"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok123"))
	_, err := c.CreateTask(context.Background(), "", "", "")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Invalid input" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0].Field != "title" {
		t.Fatalf("details not decoded: %+v", apiErr.Details)
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Health(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_DeleteTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/tasks/t1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok123"))
	if err := c.DeleteTask(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}
}
