package github

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
)

// defaultTimeout bounds each request; a timeout surfaces as NETWORK_ERROR.
const defaultTimeout = 10 * time.Second

// Transport executes one HTTP request per call and classifies the outcome.
// It has no retry policy and no cache; both belong to callers.
// Safe for concurrent use.
type Transport struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	logger  *log.Logger
}

// NewTransport creates a Transport against the given base URL.
// Pass "" for the production host, 0 for the default timeout, and nil for
// the default logger.
func NewTransport(baseURL string, timeout time.Duration, logger *log.Logger) *Transport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Transport{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		headers: map[string]string{"Accept": "application/vnd.github.v3+json"},
		logger:  logger,
	}
}

// Do executes the endpoint and JSON-decodes the response body into v.
// Outcomes are classified per the application error taxonomy:
// transport failure → NETWORK_ERROR, 404 → USER_NOT_FOUND, other non-2xx →
// SERVER_ERROR with the status attached, undecodable 2xx body →
// DECODING_ERROR. Cancelling ctx aborts the in-flight request.
func (t *Transport) Do(ctx context.Context, ep Endpoint, v any) error {
	reqID := uuid.NewString()
	reqURL := ep.URL(t.baseURL)

	req, err := http.NewRequestWithContext(ctx, ep.Method, reqURL, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "build request %s", reqURL)
	}
	for k, val := range t.headers {
		req.Header.Set(k, val)
	}

	t.logger.Debug("github request", "id", reqID, "method", ep.Method, "url", reqURL)

	resp, err := t.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "request %s failed", ep.Path)
	}
	defer resp.Body.Close()

	t.logger.Debug("github response", "id", reqID, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeUserNotFound, "resource %s not found", ep.Path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &apperrors.StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeDecoding, err, "decode response of %s", ep.Path)
	}
	return nil
}
