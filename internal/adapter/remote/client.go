// Package remote holds the clients for the external production service and
// the email callback endpoint.
package remote

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
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 512
)

// jsonPoster posts JSON bodies below a base URL with a shared secret header.
type jsonPoster struct {
	client       *http.Client
	baseURL      string
	secretHeader string
	secret       string
}

func newJSONPoster(baseURL, secretHeader, secret string, timeout time.Duration) jsonPoster {
	return jsonPoster{
		client:       &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		secretHeader: secretHeader,
		secret:       secret,
	}
}

// post sends body to baseURL+path. Any 2xx is success; other statuses are
// returned as a *StatusError.
func (p jsonPoster) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", path, err)
	}
	url := p.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if p.secret != "" {
		req.Header.Set(p.secretHeader, p.secret)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", url, err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{URL: url, Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
}

// StatusError is a non-2xx answer from a remote endpoint.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("POST %s returned %d", e.URL, e.Code)
	}
	return fmt.Sprintf("POST %s returned %d: %s", e.URL, e.Code, e.Body)
}
