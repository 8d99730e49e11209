// Package api is the client's single outbound surface. A Gateway wraps an
// *http.Client for one base URL, stamps the session's bearer token onto
// every request, and observes every response for authorization failures.
// Resource clients in this package compose Gateway calls per endpoint group.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/nutritrack/nutritrack/internal/errors"
	"github.com/nutritrack/nutritrack/internal/session"
)

const contentTypeJSON = "application/json"

// Gateway is the outbound HTTP client for one service base URL.
type Gateway struct {
	baseURL string
	client  *http.Client
	store   *session.Store
	expiry  *ExpiryInterceptor
	logger  *slog.Logger
}

// GatewayOptions groups dependencies for Gateway.
type GatewayOptions struct {
	BaseURL string
	Client  *http.Client
	Store   *session.Store
	Expiry  *ExpiryInterceptor
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewGateway builds a Gateway. Callers should pass a validated config.
func NewGateway(opts GatewayOptions) (*Gateway, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("gateway base URL is required")
	}
	if opts.Store == nil {
		return nil, errors.New("gateway session store is required")
	}

	hc := opts.Client
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		baseURL: baseURL,
		client:  hc,
		store:   opts.Store,
		expiry:  opts.Expiry,
		logger:  logger,
	}, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
// A nil in sends an empty body; a nil out discards the response body.
func (g *Gateway) Post(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (g *Gateway) Put(ctx context.Context, path string, in, out any) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPut, path, nil, body, contentType, out)
}

// Delete issues a DELETE request, discarding any response body.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// PostMultipart issues a POST with a multipart form carrying one file part
// plus string fields, and decodes the JSON response into out.
func (g *Gateway) PostMultipart(
	ctx context.Context,
	path string,
	fields map[string]string,
	fileField, fileName string,
	file io.Reader,
	out any,
) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return apperrors.Internal("encode multipart field", err)
		}
	}
	part, err := writer.CreateFormFile(fileField, fileName)
	if err != nil {
		return apperrors.Internal("create multipart file part", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return apperrors.Internal("copy multipart file", err)
	}
	if err := writer.Close(); err != nil {
		return apperrors.Internal("finalize multipart body", err)
	}

	return g.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType(), out)
}

// do performs one request through the gateway. This is the single chokepoint
// where auth is attached and authorization failures are observed.
func (g *Gateway) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
	out any,
) error {
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apperrors.Internal("build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Anonymous requests simply omit the header.
	if token := g.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		// No HTTP response means no authorization signal: never a logout.
		return apperrors.Network(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on a response body

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// The interceptor's side effect and the propagated error are not
		// mutually exclusive: calling code still sees the failure.
		if g.expiry != nil {
			g.expiry.OnAuthFailure(resp.StatusCode)
		}
		return apperrors.FromStatus(resp.StatusCode, errorMessage(resp.Body))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.FromStatus(resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Internal(fmt.Sprintf("decode %s %s response", method, path), err)
	}
	return nil
}

func encodeJSON(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, "", apperrors.Internal("encode request body", err)
	}
	return bytes.NewReader(data), contentTypeJSON, nil
}

// errorMessage extracts a human-readable message from an error response
// body. The backend uses {"message": ...}, older endpoints {"error": ...}.
func errorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
