// Package clients holds the thin HTTP call sites for the four backend
// microservices (users, inventory, sales, reviews). There is deliberately
// no retry or backoff here: every failure is surfaced directly to the
// handler, classified into one of three kinds so each page can render its
// own message.
package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Kind classifies what went wrong with a backend call.
type Kind int

const (
	// KindStatus: the backend responded with a non-2xx status.
	KindStatus Kind = iota
	// KindNoResponse: the request went out but no response came back
	// (connection refused, timeout, DNS failure).
	KindNoResponse
	// KindRequest: the request could not even be constructed or encoded.
	KindRequest
)

// Error is the error type returned by every client call.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status code, only set for KindStatus
	Message string // backend-provided message, when it sent one
	Err     error  // underlying error, for KindNoResponse / KindRequest
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("backend responded %d", e.Status)
	case KindNoResponse:
		return fmt.Sprintf("no response from backend: %v", e.Err)
	default:
		return fmt.Sprintf("could not build request: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of err when it is a KindStatus client
// error, and 0 otherwise. Handlers use this for per-endpoint mappings like
// 401 -> "Respuesta incorrecta." or 409 -> review already exists.
func StatusCode(err error) int {
	if ce, ok := err.(*Error); ok && ce.Kind == KindStatus {
		return ce.Status
	}
	return 0
}

// IsNoResponse reports whether err means the backend never answered.
func IsNoResponse(err error) bool {
	ce, ok := err.(*Error)
	return ok && ce.Kind == KindNoResponse
}

// httpClient is the shared client for all backends. 10 seconds matches
// what we tolerate before telling the user the service is unreachable.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// backendMessage is the error envelope the microservices use.
type backendMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON issues one JSON request and decodes the response into out (which
// may be nil when the caller does not care about the body).
func doJSON(method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindRequest, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return &Error{Kind: KindRequest, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNoResponse, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNoResponse, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg backendMessage
		_ = json.Unmarshal(raw, &msg)
		text := msg.Message
		if text == "" {
			text = msg.Error
		}
		return &Error{Kind: KindStatus, Status: resp.StatusCode, Message: text}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindStatus, Status: resp.StatusCode, Message: "respuesta inválida del servicio", Err: err}
		}
	}
	return nil
}

// getBinary fetches a non-JSON resource (the product photo endpoint) and
// returns the body plus its content type.
func getBinary(url string) ([]byte, string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &Error{Kind: KindRequest, Err: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", &Error{Kind: KindNoResponse, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &Error{Kind: KindStatus, Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{Kind: KindNoResponse, Err: err}
	}
	return raw, resp.Header.Get("Content-Type"), nil
}
