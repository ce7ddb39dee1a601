// Package client reads employee and department records from a running WorkHub API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/httpx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

// ErrNoData wraps every failure to obtain records. Callers never get partial data.
var ErrNoData = errors.New("no data available")

var errMissingAge = errors.New("employee record has no age")

const (
	defaultAttempts = 3
	defaultDelay    = 250 * time.Millisecond
	maxRetryAfter   = 10 * time.Second
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Attempts includes the first try.
	Attempts uint
	Delay    time.Duration
	Log      *logger.Logger
}

type Client struct {
	baseURL  string
	http     *http.Client
	attempts uint
	delay    time.Duration
	log      *logger.Logger

	mu    sync.RWMutex
	token string
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Status     int
	Code       string
	Message    string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api status %d", e.Status)
}

func (e *StatusError) HTTPStatusCode() int { return e.Status }

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base url required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = defaultAttempts
	}
	delay := cfg.Delay
	if delay <= 0 {
		delay = defaultDelay
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:  base,
		http:     hc,
		attempts: attempts,
		delay:    delay,
		log:      log.With("client", "WorkHubAPI"),
	}, nil
}

// SetToken installs a bearer token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/authenticate", body, &out); err != nil {
		return fmt.Errorf("%w: authenticate: %w", ErrNoData, err)
	}
	if out.AccessToken == "" {
		return fmt.Errorf("%w: authenticate: empty access token", ErrNoData)
	}
	c.SetToken(out.AccessToken)
	return nil
}

// ListEmployees fails as a whole when any record lacks an age; a missing age
// must never reach the averages as zero.
func (c *Client) ListEmployees(ctx context.Context) ([]*types.Employee, error) {
	var out struct {
		Employees []json.RawMessage `json:"employees"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &out); err != nil {
		return nil, fmt.Errorf("%w: list employees: %w", ErrNoData, err)
	}
	employees := make([]*types.Employee, 0, len(out.Employees))
	for i, raw := range out.Employees {
		emp, err := decodeEmployee(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: list employees: record %d: %w", ErrNoData, i, err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func decodeEmployee(raw json.RawMessage) (*types.Employee, error) {
	var ageField struct {
		Age *int `json:"age"`
	}
	if err := json.Unmarshal(raw, &ageField); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}
	if ageField.Age == nil {
		return nil, errMissingAge
	}
	var emp types.Employee
	if err := json.Unmarshal(raw, &emp); err != nil {
		return nil, fmt.Errorf("decode employee: %w", err)
	}
	return &emp, nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]*types.Department, error) {
	var out struct {
		Departments []*types.Department `json:"departments"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/departments", nil, &out); err != nil {
		return nil, fmt.Errorf("%w: list departments: %w", ErrNoData, err)
	}
	return out.Departments, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	return retry.Do(
		func() error {
			return c.once(ctx, method, path, payload, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			var se *StatusError
			if errors.As(err, &se) && se.RetryAfter > 0 {
				return se.RetryAfter
			}
			return retry.BackOffDelay(n, err, config)
		}),
		retry.RetryIf(httpx.IsRetryableError),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("Retrying API call", "path", path, "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return retry.Unrecoverable(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Status: resp.StatusCode}
		var env response.ErrorEnvelope
		if json.Unmarshal(raw, &env) == nil {
			se.Code = env.Error.Code
			se.Message = env.Error.Message
		}
		if httpx.IsRetryableHTTPStatus(resp.StatusCode) {
			se.RetryAfter = httpx.RetryAfterDuration(resp, 0, maxRetryAfter)
		}
		return se
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
