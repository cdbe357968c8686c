package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
	"github.com/jsamuelsen11/scanconsole/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// get issues a GET through client and returns the status and body. A nil
// response yields status 0.
func get(t *testing.T, client *httpclient.Client, ctx context.Context, url string) (int, string, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	status, body, err := get(t, client, context.Background(), srv.URL+"/api/v1/tasks")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"items":[]}`, body)
	assert.Equal(t, srv.URL, client.BaseURL())
}

func TestDo_RetriesRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, failStatus := range []int{http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(failStatus), func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(failStatus)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

			status, _, err := get(t, client, context.Background(), srv.URL)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, int32(3), calls.Load())
		})
	}
}

func TestDo_HonorsRetryAfterUpToMaxInterval(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "120")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	start := time.Now()
	status, _, err := get(t, client, context.Background(), srv.URL)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	// Two waits, each raised from the backoff to the 20ms cap.
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second, "Retry-After must be capped")
}

func TestDo_DoesNotRetry4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	status, _, err := get(t, client, context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_RetriesExhaustedReturnsLastResponse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("gsad down"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	status, body, err := get(t, client, context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "gsad down", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_RequestBodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL, strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, []string{`{"a":1}`, `{"a":1}`}, bodies)
}

func TestDo_InjectsHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Username = "admin"
	cfg.Password = "admin-pass"
	client := httpclient.New(cfg, "gmp", nil, testLogger())

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	_, _, err := get(t, client, ctx, srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "req-123", got.Get("X-Request-ID"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.True(t, strings.HasPrefix(got.Get("Authorization"), "Basic "))
}

func TestDo_NoOptionalHeadersByDefault(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	_, _, err := get(t, client, context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Empty(t, got.Get("X-Request-ID"))
	assert.Empty(t, got.Get("Authorization"))
}

func TestDo_CircuitBreakerOpensAndRecovers(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "gmp", nil, testLogger())

	_, _, err := get(t, client, context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, "open", client.CircuitBreakerState())
	assert.ErrorContains(t, client.HealthCheck(context.Background()), "open")

	before := calls.Load()
	_, _, err = get(t, client, context.Background(), srv.URL)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, before, calls.Load(), "backend hit while breaker open")

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "half-open", client.CircuitBreakerState())
	assert.ErrorContains(t, client.HealthCheck(context.Background()), "half-open")

	failing.Store(false)
	status, _, err := get(t, client, context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "closed", client.CircuitBreakerState())
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}
	client := httpclient.New(cfg, "gmp", nil, testLogger())

	_, _, err := get(t, client, context.Background(), srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, err = get(t, client, ctx, srv.URL)
	assert.Error(t, err, "second request should not fit in the limiter before the deadline")
}

func TestDo_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "gmp", nil, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := get(t, client, ctx, srv.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost"), "gmp", nil, testLogger())

	assert.Equal(t, "gmp", client.Name())
	assert.Equal(t, "closed", client.CircuitBreakerState())
	assert.NoError(t, client.HealthCheck(context.Background()))
}
