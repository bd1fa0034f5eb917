package fastbreak

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error type constants used in ClientError.Type.
const (
	// ErrorTypeThrottled marks a server throttling rejection (HTTP 429).
	ErrorTypeThrottled = "Throttled"
	// ErrorTypeServer marks a server-side transient failure (HTTP 5xx).
	ErrorTypeServer = "Server"
	// ErrorTypeNetwork marks a connection-level fault.
	ErrorTypeNetwork = "Network"
	// ErrorTypeTimeout marks a request deadline expiry.
	ErrorTypeTimeout = "Timeout"
	// ErrorTypeClient marks a non-throttling client-side rejection (4xx).
	ErrorTypeClient = "Client"
	// ErrorTypeNotFound marks an HTTP 404 response.
	ErrorTypeNotFound = "NotFound"
	// ErrorTypeDecode marks a payload that does not match the expected shape.
	ErrorTypeDecode = "Decode"
	// ErrorTypeCacheCollision marks an identity stored under two different
	// result types; it indicates a bug in identity derivation, never a
	// normal runtime condition.
	ErrorTypeCacheCollision = "CacheCollision"
	// ErrorTypeValidation marks invalid configuration or batch input.
	ErrorTypeValidation = "Validation"
	// ErrorTypeCanceled marks a request abandoned by context cancellation.
	ErrorTypeCanceled = "Canceled"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrClientClosed is returned for requests issued after Close.
	ErrClientClosed = errors.New("fastbreak: client closed")

	// ErrCacheCollision is wrapped by cache identity collision failures.
	ErrCacheCollision = errors.New("fastbreak: cache identity collision")
)

// ClientError is the structured error returned by the engine. Type carries
// the taxonomy kind; Cause preserves the underlying error when present.
type ClientError struct {
	Type       string
	Message    string
	Cause      error
	Endpoint   string
	StatusCode int
	Attempt    int
	MaxRetries int
	Timestamp  time.Time
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Endpoint != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Endpoint)
	}
	if e.Attempt > 0 {
		msg = fmt.Sprintf("%s (attempt %d/%d)", msg, e.Attempt, e.MaxRetries+1)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsTransient reports whether err represents a condition that might succeed
// on retry: throttling, 5xx responses, connection faults and timeouts.
// Decode failures, 4xx rejections and invariant violations are not transient.
func IsTransient(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		switch clientErr.Type {
		case ErrorTypeThrottled, ErrorTypeServer, ErrorTypeNetwork, ErrorTypeTimeout:
			return true
		}
	}
	return false
}

// TaskError pairs one batch task's failure with its input index.
type TaskError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d: %v", e.Index, e.Err)
}

// Unwrap returns the task's underlying error.
func (e *TaskError) Unwrap() error { return e.Err }

// BatchError aggregates every task failure observed before a batch resolved.
// It is returned as a single unit so callers can inspect each contributing
// failure; it is never collapsed to just the first error.
type BatchError struct {
	Errors []*TaskError
}

func newBatchError(taskErrs []*TaskError) *BatchError {
	sort.Slice(taskErrs, func(i, j int) bool { return taskErrs[i].Index < taskErrs[j].Index })
	return &BatchError{Errors: taskErrs}
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("batch failed: %v", e.Errors[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "batch failed with %d errors:", len(e.Errors))
	for _, te := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(te.Error())
	}
	return b.String()
}

// Unwrap exposes the per-task failures to errors.Is / errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, te := range e.Errors {
		errs[i] = te
	}
	return errs
}
