package httpclient_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/andyle182810/easybill/httpclient"
	"github.com/stretchr/testify/require"
)

func TestAPIError_MatchesKindSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     httpclient.ErrorKind
		sentinel error
	}{
		{httpclient.KindClientError, httpclient.ErrClientError},
		{httpclient.KindServerError, httpclient.ErrServerError},
		{httpclient.KindRateLimitExhausted, httpclient.ErrRateLimitExhausted},
		{httpclient.KindMalformedResponse, httpclient.ErrMalformedResponse},
	}

	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", &httpclient.APIError{HTTPCode: "400", Kind: tt.kind})

		require.ErrorIs(t, err, tt.sentinel, tt.kind.String())
		require.ErrorIs(t, err, httpclient.ErrAPIError, tt.kind.String())
	}
}

func TestAPIError_Message(t *testing.T) {
	t.Parallel()

	err := &httpclient.APIError{HTTPCode: "404", Description: "Not found"}
	require.EqualError(t, err, "httpclient: status 404: Not found")

	err = &httpclient.APIError{HTTPCode: "500"}
	require.EqualError(t, err, "httpclient: service returned status 500")
}

func TestAPIError_JSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(&httpclient.APIError{
		HTTPCode:    "429",
		Message:     "Too Many Requests",
		Description: "The maximum number of retries has been reached.",
		Kind:        httpclient.KindRateLimitExhausted,
	})

	require.NoError(t, err)
	require.JSONEq(t, `{
		"httpCode": "429",
		"message": "Too Many Requests",
		"description": "The maximum number of retries has been reached.",
		"kind": "rate_limit_exhausted"
	}`, string(raw))
}

func TestIsAPIError(t *testing.T) {
	t.Parallel()

	apiErr, ok := httpclient.IsAPIError(fmt.Errorf("call: %w", &httpclient.APIError{HTTPCode: "422"}))
	require.True(t, ok)
	require.Equal(t, "422", apiErr.HTTPCode)

	_, ok = httpclient.IsAPIError(errors.New("plain"))
	require.False(t, ok)
}
