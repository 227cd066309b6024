package authtoken_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andyle182810/easybill/authtoken"
	"github.com/andyle182810/easybill/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey_ReturnsTrimmedKey(t *testing.T) {
	t.Parallel()

	key := authtoken.New("  secret-key \n")

	token, err := key.GetToken(t.Context())

	require.NoError(t, err)
	require.Equal(t, "secret-key", token)
}

func TestAPIKey_RejectsEmptyKey(t *testing.T) {
	t.Parallel()

	key := authtoken.New("   ")

	_, err := key.GetToken(t.Context())

	require.ErrorIs(t, err, authtoken.ErrMissingAPIKey)
}

func TestAPIKey_SetRotatesKey(t *testing.T) {
	t.Parallel()

	key := authtoken.New("old")
	key.Set("new")

	token, err := key.GetToken(t.Context())

	require.NoError(t, err)
	require.Equal(t, "new", token)
}

func TestAPIKey_Masked(t *testing.T) {
	t.Parallel()

	require.Equal(t, "******cdef", authtoken.New("0123abcdef").Masked())
	require.Equal(t, "***", authtoken.New("abc").Masked())
}

func TestAPIKey_InjectedAsBearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.New(server.URL, httpclient.WithTokenProvider(authtoken.New("secret-key")))

	err := client.Get(t.Context(), "/customers", nil, nil)

	require.NoError(t, err)
}

func TestAPIKey_MissingKeyFailsRequest(t *testing.T) {
	t.Parallel()

	client := httpclient.New("https://api.example.com", httpclient.WithTokenProvider(authtoken.New("")))

	err := client.Get(t.Context(), "/customers", nil, nil)

	require.ErrorIs(t, err, httpclient.ErrAuthFailed)
	require.ErrorIs(t, err, authtoken.ErrMissingAPIKey)
}
