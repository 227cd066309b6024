package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
)

var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// Request describes one outbound call relative to the client's base URL.
// Query values may be scalars or slices; slices are encoded as repeated keys.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]any
	Body    any
}

func (r Request) validate() error {
	if !slices.Contains(allowedMethods, r.Method) {
		return fmt.Errorf("%w: method %q", ErrInvalidRequest, r.Method)
	}

	if r.Path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidRequest)
	}

	return nil
}

func (r Request) encodeQuery() (url.Values, error) {
	params := url.Values{}

	for key, value := range r.Query {
		switch typed := value.(type) {
		case nil:
			continue
		case []string:
			for _, v := range typed {
				params.Add(key, v)
			}
		case []int:
			for _, v := range typed {
				params.Add(key, strconv.Itoa(v))
			}
		case []any:
			for _, v := range typed {
				s, err := formatScalar(v)
				if err != nil {
					return nil, fmt.Errorf("%w: query %q: %w", ErrInvalidRequest, key, err)
				}

				params.Add(key, s)
			}
		default:
			s, err := formatScalar(value)
			if err != nil {
				return nil, fmt.Errorf("%w: query %q: %w", ErrInvalidRequest, key, err)
			}

			params.Add(key, s)
		}
	}

	return params, nil
}

func formatScalar(value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int:
		return strconv.Itoa(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case fmt.Stringer:
		return typed.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

// Response is the full outcome of a single attempt.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	RequestID  string
}

//nolint:tagliatelle
type ErrorResponse struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Arguments []string `json:"arguments"`
}
