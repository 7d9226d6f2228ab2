package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) AccessToken() string { return s.token }

func newTestClient(handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL)
	client.SetTokenSource(staticTokens{token: token})
	return client, server
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}, "token-123")
	defer server.Close()

	var out struct{}
	err := client.Do(context.Background(), http.MethodGet, "/accounts", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoOmitsBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, "")
	defer server.Close()

	var out struct{}
	err := client.Do(context.Background(), http.MethodGet, "/categories", nil, nil, &out)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoSkipsEmptyQueryParams(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}, "t")
	defer server.Close()

	var out []struct{}
	// Незаданный фильтр и фильтр с пустым значением дают одинаковый URL
	err := client.Do(context.Background(), http.MethodGet, "/expenses", Params{"account": "", "limit": "5"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "limit=5", gotQuery)

	err = client.Do(context.Background(), http.MethodGet, "/expenses", Params{"account": ""}, nil, &out)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestDoParsesErrorDetail(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}, "")
	defer server.Close()

	err := client.Do(context.Background(), http.MethodPost, "/auth/login", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>gateway error</html>`))
	}, "")
	defer server.Close()

	err := client.Do(context.Background(), http.MethodGet, "/accounts", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, ErrRequestFailed, err.Error())
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}

func TestDoNoContentSkipsDecoding(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "t")
	defer server.Close()

	var out struct{ ID string }
	err := client.Do(context.Background(), http.MethodDelete, "/expenses/e1", nil, nil, &out)
	assert.NoError(t, err)
}

func TestDoDecodeFailureIsFatal(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}, "t")
	defer server.Close()

	var out struct{}
	err := client.Do(context.Background(), http.MethodGet, "/accounts", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestLoginSendsFormEncodedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "user@example.com", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))
		w.Write([]byte(`{"access_token": "at", "refresh_token": "rt", "token_type": "bearer"}`))
	}, "")
	defer server.Close()

	tokens, err := client.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at", tokens.AccessToken)
	assert.Equal(t, "rt", tokens.RefreshToken)
}

func TestRegisterSendsJSONBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id": "u1", "email": "user@example.com", "timezone": "UTC"}`))
	}, "")
	defer server.Close()

	user, err := client.Register(context.Background(), "user@example.com", "secret", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestRefreshPassesTokenAsQueryParam(t *testing.T) {
	var gotRefresh string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotRefresh = r.URL.Query().Get("refresh_token")
		w.Write([]byte(`{"access_token": "at2", "refresh_token": "rt2", "token_type": "bearer"}`))
	}, "")
	defer server.Close()

	tokens, err := client.Refresh(context.Background(), "rt1")
	require.NoError(t, err)
	assert.Equal(t, "rt1", gotRefresh)
	assert.Equal(t, "at2", tokens.AccessToken)
}
