package fastbreak

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", 0},
		{"seconds", "5", 5 * time.Second},
		{"seconds with spaces", "  30  ", 30 * time.Second},
		{"zero seconds", "0", 0},
		{"negative seconds", "-10", 0},
		{"capped at one hour", "7200", time.Hour},
		{"invalid", "not-a-number", 0},
		{"past http date", "Mon, 02 Jan 2006 15:04:05 GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRetryAfter(tt.value); got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseRetryAfterHTTPDate(t *testing.T) {
	at := time.Now().Add(10 * time.Second).UTC()
	got := parseRetryAfter(at.Format(http.TimeFormat))
	if got <= 0 || got > 10*time.Second {
		t.Errorf("parseRetryAfter(future date) = %v, want a positive duration up to 10s", got)
	}
}

func TestRoundTripClassifiesStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantType string
	}{
		{"throttled", http.StatusTooManyRequests, ErrorTypeThrottled},
		{"server error", http.StatusInternalServerError, ErrorTypeServer},
		{"bad gateway", http.StatusBadGateway, ErrorTypeServer},
		{"not found", http.StatusNotFound, ErrorTypeNotFound},
		{"bad request", http.StatusBadRequest, ErrorTypeClient},
		{"unauthorized", http.StatusUnauthorized, ErrorTypeClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			tr := newTransport(nil, 5*time.Second, defaultUserAgent)
			tr.baseURL = server.URL
			defer tr.close()

			wire, err := tr.roundTrip(context.Background(), "scoreboardv2", url.Values{})
			if err == nil {
				t.Fatal("expected classified error")
			}
			var ce *ClientError
			if !errors.As(err, &ce) || ce.Type != tt.wantType {
				t.Errorf("error = %v, want type %s", err, tt.wantType)
			}
			if ce.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", ce.StatusCode, tt.status)
			}
			if wire == nil || wire.statusCode != tt.status {
				t.Error("wire response should carry the status for the caller")
			}
		})
	}
}

func TestRoundTripThrottledCarriesHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	tr := newTransport(nil, 5*time.Second, defaultUserAgent)
	tr.baseURL = server.URL
	defer tr.close()

	wire, err := tr.roundTrip(context.Background(), "scoreboardv2", url.Values{})
	if err == nil {
		t.Fatal("expected throttle error")
	}
	if wire.retryAfter != 7*time.Second {
		t.Errorf("retryAfter = %v, want 7s", wire.retryAfter)
	}
}

func TestRoundTripConnectionRefused(t *testing.T) {
	// Grab a port that nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := server.URL
	server.Close()

	tr := newTransport(nil, 2*time.Second, defaultUserAgent)
	tr.baseURL = dead
	defer tr.close()

	_, err := tr.roundTrip(context.Background(), "scoreboardv2", url.Values{})
	if err == nil {
		t.Fatal("expected network error")
	}
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrorTypeNetwork {
		t.Errorf("error = %v, want Network type", err)
	}
}

func TestRoundTripContextCanceled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(block)

	tr := newTransport(nil, time.Minute, defaultUserAgent)
	tr.baseURL = server.URL
	defer tr.close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := tr.roundTrip(ctx, "scoreboardv2", url.Values{})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrorTypeCanceled {
		t.Errorf("error = %v, want Canceled type", err)
	}
}

func TestRoundTripDeadlineExceeded(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(block)

	tr := newTransport(nil, time.Minute, defaultUserAgent)
	tr.baseURL = server.URL
	defer tr.close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.roundTrip(ctx, "scoreboardv2", url.Values{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrorTypeTimeout {
		t.Errorf("error = %v, want Timeout type", err)
	}
}

func TestTransportLazyCreation(t *testing.T) {
	tr := newTransport(nil, 5*time.Second, defaultUserAgent)
	if !tr.owns {
		t.Error("engine should own a pool it creates")
	}
	if tr.httpClient != nil {
		t.Error("pool should not exist before first use")
	}

	hc, err := tr.client()
	if err != nil {
		t.Fatalf("client() failed: %v", err)
	}
	if hc == nil {
		t.Fatal("expected a pool on first use")
	}

	again, err := tr.client()
	if err != nil {
		t.Fatalf("client() failed: %v", err)
	}
	if hc != again {
		t.Error("pool should be created once and reused")
	}
}

func TestTransportCallerOwnedClient(t *testing.T) {
	own := &http.Client{Timeout: time.Second}
	tr := newTransport(own, 5*time.Second, defaultUserAgent)
	if tr.owns {
		t.Error("engine must not own a caller-supplied client")
	}

	tr.close()

	// The caller's client survives close.
	if own.Timeout != time.Second {
		t.Error("caller client mutated")
	}
	if _, err := tr.client(); !errors.Is(err, ErrClientClosed) {
		t.Errorf("use after close = %v, want ErrClientClosed", err)
	}
}

func TestTransportCloseIdempotent(t *testing.T) {
	tr := newTransport(nil, 5*time.Second, defaultUserAgent)
	if _, err := tr.client(); err != nil {
		t.Fatalf("client() failed: %v", err)
	}

	tr.close()
	tr.close()
	tr.close()

	if _, err := tr.client(); !errors.Is(err, ErrClientClosed) {
		t.Errorf("use after close = %v, want ErrClientClosed", err)
	}
}

func TestRoundTripSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	tr := newTransport(nil, 5*time.Second, "custom-agent")
	tr.baseURL = server.URL
	defer tr.close()

	if _, err := tr.roundTrip(context.Background(), "scoreboardv2", url.Values{}); err != nil {
		t.Fatalf("roundTrip failed: %v", err)
	}

	if ua := got.Get("User-Agent"); ua != "custom-agent" {
		t.Errorf("User-Agent = %q", ua)
	}
	for k, want := range defaultHeaders {
		if k == "Connection" {
			// Managed by net/http itself.
			continue
		}
		if v := got.Get(k); v != want {
			t.Errorf("header %s = %q, want %q", k, v, want)
		}
	}
}
