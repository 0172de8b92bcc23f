// Package api is the HTTP client for the remote habit service. Every call is
// request → success(payload) | failure(*Error); timeouts are left to the
// underlying transport.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"habitlink/internal/logger"
	"habitlink/internal/session"
)

// Error is a failed API call: the HTTP status plus the server's message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error: %d", e.Status)
}

// benignInvitePhrases are the server's domain-rule rejections that fulfil the
// user's intent anyway (the invite is already resolved one way or another).
var benignInvitePhrases = []string{
	"Invite already used",
	"Invite expired",
	"Cannot accept your own invite",
}

// IsBenignInviteFailure reports whether err is one of the invite rejections
// treated as terminal success for idempotency purposes.
func IsBenignInviteFailure(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, phrase := range benignInvitePhrases {
		if strings.Contains(apiErr.Message, phrase) {
			return true
		}
	}
	return false
}

// IsAuthRejection reports whether err means the session is invalid.
func IsAuthRejection(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenStore
}

func NewClient(baseURL string, tokens session.TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

// do performs one JSON call. A 401 clears the stored token so the next launch
// forces re-authentication; the error still propagates to the caller.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, err := c.tokens.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			logger.Warn("Session rejected, clearing stored token")
			if err := c.tokens.ClearToken(); err != nil {
				logger.Error("Failed to clear stored token", "error", err)
			}
		}
		return &Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage prefers the {"error": "..."} envelope, falling back to the
// raw body text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 8192))
	if err != nil {
		return ""
	}
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}
