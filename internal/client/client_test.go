package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Attempts: 3, Delay: time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClientRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, response.ErrorEnvelope{Error: response.APIError{Message: "no", Code: "unauthorized"}})
			return
		}
		if atomic.AddInt32(&calls, 1) < 3 {
			writeJSON(w, http.StatusBadGateway, response.ErrorEnvelope{Error: response.APIError{Message: "upstream", Code: "bad_gateway"}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"employees": []*types.Employee{{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Age: 36}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	c.SetToken("tok")
	rows, err := c.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(rows) != 1 || rows[0].Age != 36 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("calls: got %d want 3", got)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusUnauthorized, response.ErrorEnvelope{Error: response.APIError{Message: "bad token", Code: "invalid_token"}})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).ListDepartments(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusUnauthorized || se.Code != "invalid_token" {
		t.Fatalf("expected 401 status error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls: got %d want 1", got)
	}
}

func TestClientGivesUpAfterAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).ListEmployees(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("calls: got %d want 3", got)
	}
}

func TestClientAuthenticateStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/authenticate":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["username"] != "alice" {
				writeJSON(w, http.StatusUnauthorized, response.ErrorEnvelope{Error: response.APIError{Code: "invalid_credentials"}})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"access_token": "tok", "expires_in": 3600})
		case "/api/departments":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"departments": []*types.Department{{ID: uuid.New(), Name: "Sales"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	if err := c.Authenticate(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	rows, err := c.ListDepartments(context.Background())
	if err != nil || len(rows) != 1 || rows[0].Name != "Sales" {
		t.Fatalf("ListDepartments: err=%v rows=%+v", err, rows)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestListEmployeesRejectsRecordsWithoutAge(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"null age", `{"employees":[{"age":40},{"age":null}]}`},
		{"missing age", `{"employees":[{"age":40},{}]}`},
		{"null record", `{"employees":[{"age":40},null]}`},
		{"non-numeric age", `{"employees":[{"age":"forty"}]}`},
	}
	for _, tc := range cases {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(tc.body))
		}))
		c := newTestClient(t, srv)
		rows, err := c.ListEmployees(context.Background())
		srv.Close()
		if err == nil {
			t.Fatalf("%s: expected error, got %d rows", tc.name, len(rows))
		}
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("%s: expected ErrNoData, got %v", tc.name, err)
		}
		if rows != nil {
			t.Fatalf("%s: expected no partial rows, got %+v", tc.name, rows)
		}
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Fatalf("%s: calls: got %d want 1", tc.name, got)
		}
	}
}

func TestListEmployeesKeepsZeroAge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"employees":[{"first_name":"Ada","age":0}]}`))
	}))
	defer srv.Close()

	rows, err := newTestClient(t, srv).ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(rows) != 1 || rows[0].Age != 0 || rows[0].FirstName != "Ada" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
