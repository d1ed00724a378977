package esi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenProvider returning a fixed token, or a fixed error.
type staticTokens struct {
	token string
	err   error
	calls int
}

func (s *staticTokens) AccessToken(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.BaseURL = server.URL
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = time.Millisecond
	}
	return NewClient(cfg)
}

func TestDo_StatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantBody   string
		wantAbsent bool
		check      func(t *testing.T, err error)
	}{
		{
			name:     "200 with body",
			status:   http.StatusOK,
			body:     `{"name": "X"}`,
			wantBody: `{"name": "X"}`,
		},
		{
			name:       "200 empty body",
			status:     http.StatusOK,
			wantAbsent: true,
		},
		{
			name:       "204 no content",
			status:     http.StatusNoContent,
			wantAbsent: true,
		},
		{
			name:       "304 not modified",
			status:     http.StatusNotModified,
			wantAbsent: true,
		},
		{
			name:   "400 bad request",
			status: http.StatusBadRequest,
			body:   `{"error":"bad"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsBadRequest(err))
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Contains(t, apiErr.Body, "bad")
			},
		},
		{
			name:   "401 unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var authErr *AuthenticationError
				require.ErrorAs(t, err, &authErr)
			},
		},
		{
			name:   "403 forbidden",
			status: http.StatusForbidden,
			body:   `{"error":"no scope"}`,
			check: func(t *testing.T, err error) {
				assert.True(t, IsForbidden(err))
			},
		},
		{
			name:   "404 not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				// The error carries the request URL.
				assert.Contains(t, apiErr.URL, "/latest/characters/123/")
				assert.Contains(t, apiErr.Error(), apiErr.URL)
			},
		},
		{
			name:   "420 error limited",
			status: statusErrorLimited,
			check: func(t *testing.T, err error) {
				var rateErr *RateLimitError
				require.ErrorAs(t, err, &rateErr)
				assert.Equal(t, statusErrorLimited, rateErr.StatusCode)
			},
		},
		{
			name:   "429 rate limited",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				var rateErr *RateLimitError
				require.ErrorAs(t, err, &rateErr)
				assert.Equal(t, http.StatusTooManyRequests, rateErr.StatusCode)
			},
		},
		{
			name:   "503 server error",
			status: http.StatusServiceUnavailable,
			body:   "maintenance",
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, http.StatusServiceUnavailable, serverErr.StatusCode)
				assert.Contains(t, serverErr.Body, "maintenance")
			},
		},
		{
			name:   "505 server error not retried",
			status: http.StatusHTTPVersionNotSupported,
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
			},
		},
		{
			name:   "418 unexpected status",
			status: http.StatusTeapot,
			body:   "teapot",
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusTeapot, apiErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}, Config{})

			body, err := client.Get(context.Background(), "/characters/123/", nil)

			if tt.check != nil {
				require.Error(t, err)
				tt.check(t, err)
				return
			}

			require.NoError(t, err)
			if tt.wantAbsent {
				assert.Nil(t, body)
			} else {
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	}, Config{MaxAttempts: 3})

	body, err := client.Get(context.Background(), "/status/", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_RetryCeiling(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, Config{MaxAttempts: 3})

	_, err := client.Get(context.Background(), "/status/", nil)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, Config{MaxAttempts: 3})

	_, err := client.Get(context.Background(), "/characters/123/", nil)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_NoRetryOnErrorLimited(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(statusErrorLimited)
	}, Config{MaxAttempts: 3})

	_, err := client.Get(context.Background(), "/status/", nil)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, int32(1), calls.Load())
}

// trippedTransport fails the test if any request reaches the transport.
type trippedTransport struct {
	t *testing.T
}

func (tt *trippedTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	tt.t.Fatal("transport invoked; expected auth failure before dispatch")
	return nil, errors.New("unreachable")
}

func TestDo_AuthGatingBeforeDispatch(t *testing.T) {
	tokenErr := errors.New("reauthorization required")
	client := NewClient(Config{
		Tokens:     &staticTokens{err: tokenErr},
		HTTPClient: &http.Client{Transport: &trippedTransport{t: t}},
	})

	_, err := client.Get(context.Background(), "/characters/123/wallet/", &RequestOptions{CharacterID: "123"})

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.ErrorIs(t, err, tokenErr)
}

func TestDo_NoTokenProvider(t *testing.T) {
	client := NewClient(Config{
		HTTPClient: &http.Client{Transport: &trippedTransport{t: t}},
	})

	_, err := client.Get(context.Background(), "/characters/123/wallet/", &RequestOptions{CharacterID: "123"})

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestDo_BearerInjection(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}, Config{Tokens: &staticTokens{token: "access-token"}})

	_, err := client.Get(context.Background(), "/characters/123/", &RequestOptions{CharacterID: "123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-token", gotAuth)
}

func TestDo_AnonymousSkipsTokenProvider(t *testing.T) {
	tokens := &staticTokens{token: "access-token"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{}`)
	}, Config{Tokens: tokens})

	_, err := client.Get(context.Background(), "/status/", nil)
	require.NoError(t, err)
	assert.Zero(t, tokens.calls)
}

func TestDo_DatasourceInjection(t *testing.T) {
	var gotDatasource string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotDatasource = r.URL.Query().Get("datasource")
		fmt.Fprint(w, `{}`)
	}

	t.Run("default injected", func(t *testing.T) {
		client := newTestClient(t, handler, Config{})
		_, err := client.Get(context.Background(), "/status/", nil)
		require.NoError(t, err)
		assert.Equal(t, "tranquility", gotDatasource)
	})

	t.Run("explicit value untouched", func(t *testing.T) {
		client := newTestClient(t, handler, Config{})
		opts := &RequestOptions{Query: map[string][]string{"datasource": {"singularity"}}}
		_, err := client.Get(context.Background(), "/status/", opts)
		require.NoError(t, err)
		assert.Equal(t, "singularity", gotDatasource)
	})
}

func TestDo_URLBuilding(t *testing.T) {
	var gotPath string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{}`)
	}

	t.Run("missing leading slash normalized", func(t *testing.T) {
		client := newTestClient(t, handler, Config{})
		_, err := client.Get(context.Background(), "status/", nil)
		require.NoError(t, err)
		assert.Equal(t, "/latest/status/", gotPath)
	})

	t.Run("version override", func(t *testing.T) {
		client := newTestClient(t, handler, Config{})
		_, err := client.Get(context.Background(), "/status/", &RequestOptions{Version: "v2"})
		require.NoError(t, err)
		assert.Equal(t, "/v2/status/", gotPath)
	})
}

func TestDo_DefaultHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		fmt.Fprint(w, `{}`)
	}, Config{UserAgent: "custom-agent/2.0"})

	_, err := client.Get(context.Background(), "/status/", nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "custom-agent/2.0", got.Get("User-Agent"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))
}

func TestDo_CallerHeadersWin(t *testing.T) {
	var gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{}`)
	}, Config{})

	opts := &RequestOptions{Headers: http.Header{"Accept": {"application/json; charset=utf-8"}}}
	_, err := client.Get(context.Background(), "/status/", opts)
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", gotAccept)
}

func TestDo_RequestBody(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		gotBody = string(payload)
		fmt.Fprint(w, `{}`)
	}, Config{})

	opts := &RequestOptions{Body: []int64{34, 35}}
	_, err := client.Post(context.Background(), "/universe/names/", opts)
	require.NoError(t, err)
	assert.JSONEq(t, `[34, 35]`, gotBody)
}

func TestDo_NonJSONBodyPassedThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "plain text, not json")
	}, Config{})

	body, err := client.Get(context.Background(), "/status/", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text, not json", string(body))
}

func TestDo_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Connection refused from here on.

	client := NewClient(Config{BaseURL: server.URL, RetryInterval: time.Millisecond})

	_, err := client.Get(context.Background(), "/status/", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Error(t, apiErr.Unwrap())
}

func TestServerStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/status/", r.URL.Path)
		fmt.Fprint(w, `{"players": 25000, "server_version": "1.0"}`)
	}, Config{})

	status, err := client.ServerStatus(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"players": 25000, "server_version": "1.0"}`, string(status))
}
