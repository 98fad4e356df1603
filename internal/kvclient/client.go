// Package kvclient is the HTTP client for the key-value service. A failed
// round trip is reported as an error and never as a missing key, so
// callers can tell "never configured" apart from "store unreachable".
package kvclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"licitemos/internal/models"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type option func(*Client)

func WithHTTPClient(h *http.Client) option {
	return func(c *Client) {
		c.http = h
	}
}

func New(baseURL, token string, opts ...option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the value stored under key and whether one exists. The wire
// contract answers a missing key with a null value, so a stored literal
// null is indistinguishable from absence; preference blobs are always
// objects or arrays, which keeps that corner harmless.
func (c *Client) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	body, err := c.post(ctx, "/kv/get", map[string]any{"key": key})
	if err != nil {
		return nil, false, fmt.Errorf("kvclient.Client.Get: %w", err)
	}

	var resp struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("kvclient.Client.Get: %w", err)
	}

	if len(resp.Value) == 0 || string(resp.Value) == "null" {
		return nil, false, nil
	}
	return resp.Value, true, nil
}

func (c *Client) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvclient.Client.Set: %w", err)
	}

	body, err := c.post(ctx, "/kv/set", map[string]any{"key": key, "value": json.RawMessage(raw)})
	if err != nil {
		return fmt.Errorf("kvclient.Client.Set: %w", err)
	}

	return checkAck(body, "kvclient.Client.Set")
}

func (c *Client) Delete(ctx context.Context, key string) error {
	body, err := c.post(ctx, "/kv/del", map[string]any{"key": key})
	if err != nil {
		return fmt.Errorf("kvclient.Client.Delete: %w", err)
	}

	return checkAck(body, "kvclient.Client.Delete")
}

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("kvclient.Client.Health: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("kvclient.Client.Health: %w: %s", models.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kvclient.Client.Health: %w: status %d", models.ErrStoreUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrStoreUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", models.ErrStoreUnavailable, resp.StatusCode, serviceError(body))
	}

	return body, nil
}

func checkAck(body []byte, caller string) error {
	var ack struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return fmt.Errorf("%s: %w", caller, err)
	}
	if !ack.Success {
		return fmt.Errorf("%s: %w: request not acknowledged", caller, models.ErrStoreUnavailable)
	}
	return nil
}

func serviceError(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return string(body)
}
