package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// RecordedRequest is what the fake API saw for one call.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	RequestID     string
	UserAgent     string
	Body          string
}

// Reply is a scripted response of the fake API. A zero Status means 200.
type Reply struct {
	Status int
	Body   string
}

// APIServer is a fake REST API that answers with scripted replies in order
// and records every request. Once the script is used up the last reply is
// repeated. Without any script it answers 200 with an empty object.
type APIServer struct {
	*httptest.Server

	mu       sync.Mutex
	replies  []Reply
	requests []RecordedRequest
}

func NewAPIServer(t *testing.T, replies ...Reply) *APIServer {
	t.Helper()

	api := &APIServer{
		Server:   nil,
		mu:       sync.Mutex{},
		replies:  replies,
		requests: nil,
	}

	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		reply := api.record(RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
			UserAgent:     r.Header.Get("User-Agent"),
			Body:          string(body),
		})

		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply.Body))
	}))
	t.Cleanup(api.Close)

	return api
}

func (api *APIServer) record(req RecordedRequest) Reply {
	api.mu.Lock()
	defer api.mu.Unlock()

	api.requests = append(api.requests, req)

	switch {
	case len(api.replies) == 0:
		return Reply{Status: http.StatusOK, Body: "{}"}
	case len(api.replies) == 1:
		return api.replies[0]
	default:
		reply := api.replies[0]
		api.replies = api.replies[1:]

		return reply
	}
}

// Requests returns a copy of the requests received so far.
func (api *APIServer) Requests() []RecordedRequest {
	api.mu.Lock()
	defer api.mu.Unlock()

	return append([]RecordedRequest(nil), api.requests...)
}

// BaseURL mirrors the production URL layout.
func (api *APIServer) BaseURL() string {
	return api.URL + "/rest/v1"
}
