package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"github.com/dmitrijs2005/gophchat/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 4 << 20

// Options tunes an HTTPClient. The zero value is usable.
type Options struct {
	// HTTPClient is used for all requests. If nil, a client with Timeout is
	// created.
	HTTPClient *http.Client

	// Timeout applies only when HTTPClient is nil. Zero means no timeout.
	Timeout time.Duration

	// RequestsPerSecond limits outbound requests; zero or negative disables
	// the limiter.
	RequestsPerSecond float64

	// Logger receives one debug line per request. Defaults to logging.Nop.
	Logger logging.Logger
}

// HTTPClient implements Client on top of net/http.
type HTTPClient struct {
	facade     Facade
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the backend at baseURL. The base URL is
// used as-is; a malformed value only shows up as ErrNetworkFailure on the
// first request.
func NewHTTPClient(baseURL string, opts Options) *HTTPClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Nop{}
	}

	return &HTTPClient{
		facade:     NewFacade(baseURL),
		httpClient: httpClient,
		limiter:    limiter,
		log:        log.With("component", "http_client"),
	}
}

// Facade exposes the URL/header builder used by this client.
func (c *HTTPClient) Facade() Facade {
	return c.facade
}

// CloseIdleConnections closes idle connections of the underlying transport.
func (c *HTTPClient) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// do performs one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	requestID := uuid.NewString()
	started := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s %s: rate limiter: %w", ErrNetworkFailure, method, path, err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request body: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.facade.BuildURL(path), bodyReader)
	if err != nil {
		return fmt.Errorf("%w: build %s %s: %w", ErrNetworkFailure, method, path, err)
	}
	req.Header = c.facade.BuildAuthHeaders(token)
	req.Header.Set(common.RequestIDHeader, requestID)

	log := c.log.With("request_id", requestID, "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err, "elapsed", time.Since(started))
		return fmt.Errorf("%w: %s %s: %w", ErrNetworkFailure, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read %s %s response: %w", ErrNetworkFailure, method, path, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(respBody)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}
	return nil
}
