package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrInvalidRequest   = errors.New("httpclient: invalid request")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrAuthFailed       = errors.New("httpclient: authentication failed")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")

	ErrAPIError           = errors.New("httpclient: api error")
	ErrRateLimitExhausted = errors.New("httpclient: rate limit retries exhausted")
	ErrClientError        = errors.New("httpclient: client error")
	ErrServerError        = errors.New("httpclient: server error")
	ErrMalformedResponse  = errors.New("httpclient: malformed response")
)

const descriptionRetriesExhausted = "The maximum number of retries has been reached."

type ErrorKind int

const (
	KindClientError ErrorKind = iota
	KindServerError
	KindRateLimitExhausted
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindClientError:
		return "client_error"
	case KindServerError:
		return "server_error"
	case KindRateLimitExhausted:
		return "rate_limit_exhausted"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindClientError:
		return ErrClientError
	case KindServerError:
		return ErrServerError
	case KindRateLimitExhausted:
		return ErrRateLimitExhausted
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return ErrAPIError
	}
}

// APIError is the single failure type returned for unsuccessful responses.
// HTTPCode is the status code as a string, Message the HTTP status text and
// Description the human readable explanation.
type APIError struct {
	HTTPCode    string    `json:"httpCode"`
	Message     string    `json:"message"`
	Description string    `json:"description"`
	Kind        ErrorKind `json:"kind"`
	RequestID   string    `json:"requestId,omitempty"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("httpclient: status %s: %s", e.HTTPCode, e.Description)
	}

	return "httpclient: service returned status " + e.HTTPCode
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPIError || target == e.Kind.sentinel()
}

func (e *APIError) Unwrap() error {
	return e.Kind.sentinel()
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func kindForStatus(statusCode int) ErrorKind {
	if statusCode >= 500 {
		return KindServerError
	}

	return KindClientError
}
