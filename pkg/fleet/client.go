// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     fleet
// Description: JSON HTTP client for the robot fleet API
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	herror "github.com/msto63/helper/foundation/core/error"
	hlog "github.com/msto63/helper/foundation/core/log"
	"github.com/msto63/helper/pkg/core/version"
)

// DefaultTimeout is used when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// Config holds client configuration
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration

	// RaiseErrors turns responses with status >= 400 into errors.
	// 401 is always an error.
	RaiseErrors bool

	Logger     *hlog.Logger
	HTTPClient *http.Client
}

// Client is the fleet API client
type Client struct {
	baseURL     string
	username    string
	password    string
	raiseErrors bool
	logger      *hlog.Logger
	httpClient  *http.Client
}

// NewClient creates a new fleet client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hlog.GetDefault()
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		username:    cfg.Username,
		password:    cfg.Password,
		raiseErrors: cfg.RaiseErrors,
		logger:      logger.WithName("fleet"),
		httpClient:  httpClient,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends a JSON request relative to the base URL and returns the
// raw JSON response. A nil body sends no payload. An empty response body
// yields "{}".
func (c *Client) Request(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	const op = "fleet.Request"
	requestID := uuid.New().String()
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, herror.Wrap(err, "failed to marshal request").
				WithCode(herror.CodeInvalidInput).
				WithOperation(op).
				WithRequestID(requestID)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, herror.Wrap(err, "failed to create request").
			WithCode(herror.CodeInvalidInput).
			WithOperation(op).
			WithRequestID(requestID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "helper/"+version.Version)
	req.Header.Set("X-Request-ID", requestID)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	logger := c.logger.WithRequestID(requestID)
	timer := logger.StartTimer(method + " " + endpoint).WithLevel(hlog.LevelDebug)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		timer.StopWithError(err)
		return nil, herror.Wrap(err, "connection failed").
			WithCode(herror.CodeConnectionFailed).
			WithOperation(op).
			WithRequestID(requestID).
			WithDetail("url", url)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		timer.StopWithError(err)
		return nil, herror.Wrap(err, "connection failed").
			WithCode(herror.CodeConnectionFailed).
			WithOperation(op).
			WithRequestID(requestID).
			WithDetail("url", url)
	}
	timer.WithField("status", resp.StatusCode).Stop()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, herror.New("fleet authorization failed").
			WithCode(herror.CodeUnauthorized).
			WithOperation(op).
			WithRequestID(requestID).
			WithDetail("url", url)
	}
	if c.raiseErrors && resp.StatusCode >= http.StatusBadRequest {
		return nil, herror.Newf("fleet request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))).
			WithCode(herror.CodeExternalServiceError).
			WithOperation(op).
			WithRequestID(requestID).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, herror.New("response not parsable, authorization may have failed").
			WithCode(herror.CodeInvalidFormat).
			WithOperation(op).
			WithRequestID(requestID).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("fleet request returned an error status", hlog.Fields{"status": resp.StatusCode, "endpoint": endpoint})
	}
	return json.RawMessage(raw), nil
}

// get requests endpoint and decodes the response into out
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	raw, err := c.Request(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return err
	}
	return decode(raw, endpoint, out)
}

func decode(raw json.RawMessage, endpoint string, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return herror.Wrap(err, fmt.Sprintf("unexpected response shape from %s", endpoint)).
			WithCode(herror.CodeInvalidFormat).
			WithOperation("fleet.decode").
			WithDetail("endpoint", endpoint)
	}
	return nil
}
