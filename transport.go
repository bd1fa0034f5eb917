package fastbreak

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// BaseURL is the fixed remote origin for the NBA Stats API.
const BaseURL = "https://stats.nba.com/stats"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/113.0"

// defaultHeaders mimics a browser; stats.nba.com rejects bare clients.
// Accept-Encoding is left to net/http so gzip stays transparent.
var defaultHeaders = map[string]string{
	"Accept":          "*/*",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
	"Referer":         "https://stats.nba.com/",
	"Pragma":          "no-cache",
	"Cache-Control":   "no-cache",
	"Sec-Fetch-Dest":  "empty",
}

// transport owns the pooled connection resource and performs exactly one
// network exchange per roundTrip call. The pool is created lazily on first
// use; when caller-supplied it is never closed by the engine.
type transport struct {
	mu         sync.Mutex
	httpClient *http.Client
	owns       bool
	closed     bool

	baseURL   string
	timeout   time.Duration
	userAgent string
}

// wireResponse is the classified outcome of one network exchange.
type wireResponse struct {
	statusCode int
	body       []byte
	// retryAfter is the server's wait hint on throttling responses, zero
	// when absent.
	retryAfter time.Duration
}

func newTransport(httpClient *http.Client, timeout time.Duration, userAgent string) *transport {
	return &transport{
		httpClient: httpClient,
		owns:       httpClient == nil,
		baseURL:    BaseURL,
		timeout:    timeout,
		userAgent:  userAgent,
	}
}

// client returns the pooled HTTP client, opening it on first use.
func (t *transport) client() (*http.Client, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClientClosed
	}
	if t.httpClient == nil {
		t.httpClient = &http.Client{
			Timeout: t.timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				Proxy:               http.ProxyFromEnvironment,
			},
		}
	}
	return t.httpClient, nil
}

// close releases the pool. Idempotent; caller-supplied clients are left
// alone, their lifetime belongs to the caller.
func (t *transport) close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	if t.owns && t.httpClient != nil {
		t.httpClient.CloseIdleConnections()
		t.httpClient = nil
	}
}

// roundTrip performs one GET against path with the given query parameters.
// Network faults, timeouts, throttling and HTTP status rejections are all
// returned as classified *ClientError values; a nil error means the body is
// ready for decoding.
func (t *transport) roundTrip(ctx context.Context, path string, params url.Values) (*wireResponse, error) {
	httpClient, err := t.client()
	if err != nil {
		return nil, &ClientError{Type: ErrorTypeCanceled, Message: "transport closed", Cause: err, Endpoint: path}
	}

	reqURL := t.baseURL + "/" + path
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrorTypeValidation, Message: "building request", Cause: err, Endpoint: path}
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, t.classifyNetworkError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{
			Type:       ErrorTypeNetwork,
			Message:    "reading response body",
			Cause:      err,
			Endpoint:   path,
			StatusCode: resp.StatusCode,
		}
	}

	wire := &wireResponse{statusCode: resp.StatusCode, body: body}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		wire.retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		return wire, &ClientError{
			Type:       ErrorTypeThrottled,
			Message:    "server throttled the request",
			Endpoint:   path,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode >= 500:
		return wire, &ClientError{
			Type:       ErrorTypeServer,
			Message:    fmt.Sprintf("server error %d", resp.StatusCode),
			Endpoint:   path,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode == http.StatusNotFound:
		return wire, &ClientError{
			Type:       ErrorTypeNotFound,
			Message:    "resource not found",
			Endpoint:   path,
			StatusCode: resp.StatusCode,
		}
	case resp.StatusCode >= 400:
		return wire, &ClientError{
			Type:       ErrorTypeClient,
			Message:    fmt.Sprintf("request rejected with %d", resp.StatusCode),
			Endpoint:   path,
			StatusCode: resp.StatusCode,
		}
	}

	return wire, nil
}

func (t *transport) classifyNetworkError(path string, err error) *ClientError {
	errType := ErrorTypeNetwork
	msg := "network request failed"

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		errType = ErrorTypeTimeout
		msg = "request deadline exceeded"
	case errors.Is(err, context.Canceled):
		errType = ErrorTypeCanceled
		msg = "request canceled"
	case errors.As(err, &netErr) && netErr.Timeout():
		errType = ErrorTypeTimeout
		msg = "request timed out"
	}

	return &ClientError{Type: errType, Message: msg, Cause: err, Endpoint: path}
}

// parseRetryAfter parses a Retry-After header value, supporting both
// delay-seconds and HTTP-date formats. Returns zero when absent or invalid.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		if seconds > 0 {
			delay := time.Duration(seconds) * time.Second
			if delay > time.Hour {
				delay = time.Hour
			}
			return delay
		}
		return 0
	}

	if at, err := http.ParseTime(value); err == nil {
		delay := time.Until(at)
		if delay > 0 && delay <= time.Hour {
			return delay
		}
	}

	return 0
}
