package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", 0, nil)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClient_AuthURL(t *testing.T) {
	client := NewClient("https://example.org", time.Second, nil)

	raw := client.AuthURL("cid", "http://127.0.0.1:9000/callback", "st")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "cid", u.Query().Get(api.ParamClientID))
	assert.Equal(t, "http://127.0.0.1:9000/callback", u.Query().Get(api.ParamRedirectURI))
	assert.Equal(t, "st", u.Query().Get(api.ParamState))
}

// TestClient_Do проверяет JSON запрос с bearer токеном
func TestClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/query_many", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req api.QueryManyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Limit)
		assert.Equal(t, []api.SortKey{{Field: "timestamp", Order: -1}, {Field: "id", Order: -1}}, req.Sort)

		_, _ = w.Write([]byte(`[{"id":"a","timestamp":1}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	var result []map[string]any
	err := client.Do(context.Background(), http.MethodPost, api.PathQueryMany, "tok-1", api.QueryManyRequest{
		Query: map[string]any{"topic": "a"},
		Sort:  []api.SortKey{{Field: "timestamp", Order: -1}, {Field: "id", Order: -1}},
		Limit: 2,
	}, &result)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0]["id"])
}

func TestClient_Do_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	var result map[string]any
	err := client.Do(context.Background(), http.MethodPost, api.PathDelete, "", api.DeleteRequest{ObjectID: "x"}, &result)
	require.NoError(t, err)
	assert.Nil(t, result)
}

// TestClient_Do_Error проверяет обработку ошибок сервера
func TestClient_Do_Error(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
		status     int
		retryable  bool
	}{
		{
			name:       "detail from body",
			status:     http.StatusBadRequest,
			body:       `{"detail":"object is malformed"}`,
			wantDetail: "object is malformed",
		},
		{
			name:       "status text when body is not json",
			status:     http.StatusInternalServerError,
			body:       "boom",
			wantDetail: "Internal Server Error",
			retryable:  true,
		},
		{
			name:       "status text when detail is empty",
			status:     http.StatusForbidden,
			body:       `{}`,
			wantDetail: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, nil)
			err := client.Do(context.Background(), http.MethodPost, api.PathUpdate, "tok", map[string]any{}, nil)

			var reqErr *errs.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.Status)
			assert.Equal(t, tt.wantDetail, reqErr.Detail)
			assert.Equal(t, tt.retryable, reqErr.Retryable())
		})
	}
}

func TestClient_Do_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Do(ctx, http.MethodPost, api.PathUpdate, "tok", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestClient_ExchangeCode проверяет обмен кода на токен (form POST)
func TestClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		form, err := url.ParseQuery(string(body))
		require.NoError(t, err)

		assert.Equal(t, "cid", form.Get(api.ParamClientID))
		assert.Equal(t, "secret", form.Get(api.ParamClientSecret))
		assert.Equal(t, "code-1", form.Get(api.ParamCode))

		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "tok", OwnerID: "owner"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nil)
	resp, err := client.ExchangeCode(context.Background(), "cid", "secret", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "owner", resp.Owner())
}

func TestClient_ExchangeCode_Errors(t *testing.T) {
	t.Run("non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"code expired"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second, nil).ExchangeCode(context.Background(), "cid", "secret", "code")

		var exErr *errs.AuthExchangeError
		require.ErrorAs(t, err, &exErr)
		assert.Equal(t, http.StatusUnauthorized, exErr.Status)
		assert.Equal(t, "code expired", exErr.Detail)
	})

	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second, nil).ExchangeCode(context.Background(), "cid", "secret", "code")
		assert.ErrorIs(t, err, errs.ErrMalformedToken)
	})
}
