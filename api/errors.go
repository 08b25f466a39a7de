// ABOUTME: Uniform error shape for every gateway failure
// ABOUTME: Classifies failures as transport, application or mapping errors
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a gateway failure.
type Kind string

const (
	// KindTransport covers unreachable servers and non-2xx responses without a
	// readable detail.
	KindTransport Kind = "transport"
	// KindApplication is a non-2xx response carrying a detail message.
	KindApplication Kind = "application"
	// KindMapping is a 2xx response whose body does not match the contract.
	KindMapping Kind = "mapping"
)

// Error is the single error type returned by Client methods.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a gateway 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Message returns the user-facing message of a gateway error, or err.Error()
// for anything else.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func transportError(op string, err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Op:      op,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

func mappingError(op string, status int, err error) *Error {
	return &Error{
		Kind:       KindMapping,
		Op:         op,
		StatusCode: status,
		Message:    fmt.Sprintf("unexpected response body: %v", err),
		Err:        err,
	}
}

// statusError builds the error for a non-2xx response. A JSON detail wins;
// otherwise the status text is used.
func statusError(op string, resp *http.Response, body []byte) *Error {
	if detail := parseDetail(body); detail != "" {
		return &Error{
			Kind:       KindApplication,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    detail,
		}
	}

	text := http.StatusText(resp.StatusCode)
	if parts := strings.SplitN(resp.Status, " ", 2); len(parts) == 2 && parts[1] != "" {
		text = parts[1]
	}
	if text == "" {
		text = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return &Error{
		Kind:       KindTransport,
		Op:         op,
		StatusCode: resp.StatusCode,
		Message:    text,
	}
}

func parseDetail(body []byte) string {
	var eb struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}
	if string(eb.Detail) == "null" {
		return ""
	}
	// Structured details (field error lists) are surfaced as compact JSON.
	return string(eb.Detail)
}
