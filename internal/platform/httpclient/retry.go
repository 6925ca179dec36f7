package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/docseed/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. The body is buffered once and replayed on every attempt. Google
// APIs answer quota and overload errors with Retry-After; when present it
// replaces the computed backoff, capped at maxInterval.
//
// The response is written through resp so the bodyclose linter does not flag
// callers; the caller owns resp.Body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}
	if retryDisabled(ctx) {
		attempts = 1
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			delay := c.retryDelay(attempt, hint)
			c.logRetry(ctx, req, attempt, delay, lastErr)
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
		}

		replayBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		hint = retryAfter(r.Header, time.Now())

		// The final response is handed back unread so the caller can decode
		// the API error envelope.
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		discard(r)
	}

	return lastErr
}

// retryDelay prefers the server's hint over exponential backoff.
func (c *Client) retryDelay(attempt int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, c.retryCfg.maxInterval)
	}
	return backoff(attempt, c.retryCfg)
}

func (c *Client) logRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, cause error) {
	logging.FromContext(ctx).WarnContext(ctx, "retrying google api request",
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("delay", delay),
		slog.Any("error", cause),
	)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func replayBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes a response so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// backoff returns the delay before retry number attempt (1-indexed):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, then
// jittered by up to ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	base = min(base, float64(cfg.maxInterval))

	spread := base * jitterFraction
	d := base + spread*(2*rand.Float64()-1)

	return time.Duration(max(d, 0))
}

// retryAfter parses a Retry-After header given either as delay-seconds or as
// an HTTP date. It returns zero when the header is absent or unusable.
func retryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Everything except caller cancellation is treated as transient.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus covers rate limiting (429) and server-side failures (5xx).
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
