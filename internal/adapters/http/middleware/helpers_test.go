package middleware_test

import (
	"log/slog"
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
	"github.com/jsamuelsen11/scanconsole/internal/platform/httpclient"
)

func newBackendClient(baseURL string) *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}, "gmp", nil, slog.New(slog.DiscardHandler))
}
