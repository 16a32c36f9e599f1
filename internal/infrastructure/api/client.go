package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kmutua/billdesk/pkg/apperror"
	"github.com/kmutua/billdesk/pkg/busy"
)

// Client is the typed HTTP client for the remote billing API. It implements
// every repository interface in internal/domain/repository.
//
// Error mapping happens once, here at the boundary: transport failures become
// NetworkFailure, 404 becomes NotFound, and any other non-2xx status becomes
// SubmissionRejected carrying the server's reason and field-error map.
// There is no retry policy and no timeout unless one is configured.
type Client struct {
	baseURL string
	http    *http.Client
	tracker *busy.Tracker
	log     *slog.Logger
}

// New creates a Client for the given base URL (including any path prefix,
// e.g. "http://localhost:8080/api"). Timeout 0 means no timeout. The busy
// tracker and logger may be nil.
func New(baseURL string, timeout time.Duration, tracker *busy.Tracker, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracker: tracker,
		log:     log,
	}
}

// do issues one request and decodes the response into out (which may be nil
// for endpoints whose body the caller ignores). Every request holds one busy
// reference from dispatch until it resolves, success or failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.tracker != nil {
		c.tracker.Begin()
		defer c.tracker.End()
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			"request_id", requestID[:8],
			"method", method,
			"path", path,
			"error", err,
		)
		return apperror.NewNetworkFailure(err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"request_id", requestID[:8],
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.NewNetworkFailure(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// mapError converts a non-2xx response into the application error taxonomy.
// The server's rejection body is {"message": "...", "errors": {field: msg}};
// both keys are optional and the errors object maps field names to messages.
func (c *Client) mapError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return apperror.NewNotFoundError("Resource")
	}

	var payload struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Errors  map[string]string `json:"errors"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	var fieldErrors []apperror.FieldError
	for field, msg := range payload.Errors {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: msg})
	}
	if message == "" && len(fieldErrors) == 0 {
		message = fmt.Sprintf("Server returned %s", resp.Status)
	}
	return apperror.NewSubmissionRejected(message, fieldErrors)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
