// Package lcu is a thin request/response client for the local League client
// API: lockfile credential discovery, loopback TLS, and transient-only retry.
package lcu

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const (
	requestTimeout   = 5 * time.Second
	discoverPoll     = 500 * time.Millisecond
	retryInitial     = 250 * time.Millisecond
	retryCap         = 2 * time.Second
	retryMaxAttempts = 4
)

// Credentials locate and authenticate the local service. The token is kept
// out of logs and String() output.
type Credentials struct {
	Port   int
	Token  string
	Scheme string
}

func (c Credentials) String() string {
	return fmt.Sprintf("%s://127.0.0.1:%d", c.Scheme, c.Port)
}

// StatusError is an HTTP-level failure from the client API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client api returned %d: %s", e.Code, e.Body)
}

// ErrNotReady is returned while credentials cannot be discovered.
var ErrNotReady = errors.New("client api credentials not available")

// Client talks to the local client API.
type Client struct {
	log           *zap.Logger
	http          *http.Client
	lockfilePaths []string

	mu    sync.Mutex
	creds *Credentials
}

func NewClient(lockfilePaths []string, log *zap.Logger) *Client {
	if len(lockfilePaths) == 0 {
		lockfilePaths = defaultLockfilePaths()
	}
	return &Client{
		log:           log,
		lockfilePaths: lockfilePaths,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				// The client serves a self-signed cert on loopback.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

func defaultLockfilePaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		`C:\Riot Games\League of Legends\lockfile`,
		home + `/Applications/League of Legends.app/Contents/LoL/lockfile`,
		home + `/.local/share/leagueoflegends/lockfile`,
		"lockfile",
	}
}

// EnsureReady blocks until credentials are discoverable or the timeout
// elapses, polling at a fixed interval. "Not yet available" is an error
// return, never a panic.
func (c *Client) EnsureReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if _, err := c.credentials(); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("client api not ready after %s: %w", timeout, ErrNotReady)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(discoverPoll):
		}
	}
}

// Credentials returns the discovered credentials, discovering on demand.
func (c *Client) Credentials() (Credentials, error) {
	creds, err := c.credentials()
	if err != nil {
		return Credentials{}, err
	}
	return *creds, nil
}

// Forget drops cached credentials so the next request rediscovers them.
// Called when the client process goes away mid-session.
func (c *Client) Forget() {
	c.mu.Lock()
	c.creds = nil
	c.mu.Unlock()
}

func (c *Client) credentials() (*Credentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.creds != nil {
		return c.creds, nil
	}
	for _, path := range c.lockfilePaths {
		creds, err := parseLockfile(path)
		if err != nil {
			continue
		}
		c.log.Info("client api discovered", zap.String("endpoint", creds.String()))
		c.creds = creds
		return creds, nil
	}
	return nil, ErrNotReady
}

// parseLockfile reads "name:pid:port:token:scheme".
func parseLockfile(path string) (*Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(strings.TrimSpace(string(raw)), ":")
	if len(parts) < 5 {
		return nil, fmt.Errorf("malformed lockfile %s", path)
	}
	port, err := strconv.Atoi(parts[2])
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("malformed lockfile port in %s", path)
	}
	return &Credentials{Port: port, Token: parts[3], Scheme: parts[4]}, nil
}

// Request issues one API call with transient-only retry: connection errors,
// timeouts, 404/409/423 and 5xx back off exponentially (250ms start, 2s cap,
// 4 attempts); other 4xx return *StatusError immediately.
func (c *Client) Request(ctx context.Context, method, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
	}

	var out []byte
	op := func() error {
		data, err := c.do(ctx, method, path, payload)
		if err != nil {
			var statusErr *StatusError
			if errors.As(err, &statusErr) && !transientStatus(statusErr.Code) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = data
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitial
	b.MaxInterval = retryCap
	policy := backoff.WithContext(backoff.WithMaxRetries(b, retryMaxAttempts-1), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	creds, err := c.credentials()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s://127.0.0.1:%d%s", creds.Scheme, creds.Port, path)
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.SetBasicAuth("riot", creds.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	return data, nil
}

func transientStatus(code int) bool {
	switch code {
	case http.StatusNotFound, http.StatusConflict, http.StatusLocked:
		return true
	}
	return code >= 500
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
