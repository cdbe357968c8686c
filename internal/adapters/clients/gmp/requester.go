package gmp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/scanconsole/internal/domain"
	"github.com/jsamuelsen11/scanconsole/internal/platform/httpclient"
)

// requester centralizes the read request lifecycle: URL building, execution
// via httpclient.Client, status validation, error translation, JSON decoding
// and response body cleanup.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// getJSON issues GET {baseURL}{path}?{query} and decodes a 200 response into
// respBody. Any other status is translated by TranslateHTTPError.
func (r *requester) getJSON(ctx context.Context, path string, query url.Values, respBody any) error {
	target := r.client.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	return r.execute(req, respBody)
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}

func (r *requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still carry the response;
		// translate it so callers see a domain error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != http.StatusOK {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		// Transport failures and an open breaker mean the backend cannot be
		// reached right now.
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
