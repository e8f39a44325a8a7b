package ratelimit

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Favna/rest/errors"
	"github.com/Favna/rest/metrics"
	"github.com/Favna/rest/parsers"
	"github.com/Favna/rest/routes"
)

// bucketHandler serializes requests for one (hash, major parameter) pair
// and tracks the token window the server advertises for it. The hash is
// immutable on a handler: when the server moves a route to a different
// bucket, future requests land on a new handler via the manager's hash
// table and this one drains and is swept.
type bucketHandler struct {
	mgr   *Manager
	id    string
	hash  string
	major string

	queue requestQueue

	// mu guards the window state below. remaining and reset are always
	// updated together so limited() never sees a half-applied response.
	mu        sync.Mutex
	limit     int
	remaining int
	reset     time.Time
}

func newBucketHandler(mgr *Manager, hash, major string) *bucketHandler {
	return &bucketHandler{
		mgr:   mgr,
		id:    hash + ":" + major,
		hash:  hash,
		major: major,
		// limit is unknown and remaining starts at 1 so a fresh bucket
		// never blocks its first request.
		limit:     -1,
		remaining: 1,
	}
}

// limited reports whether the window is exhausted. Callers hold b.mu.
func (b *bucketHandler) limited(now time.Time) bool {
	return b.remaining <= 0 && now.Before(b.reset)
}

// inactive reports whether the sweeper may drop this handler.
func (b *bucketHandler) inactive(now time.Time) bool {
	if !b.queue.empty() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.limited(now)
}

// push runs req through the bucket's FIFO and returns the decoded body.
// The head-of-line slot is released on every exit path.
func (b *bucketHandler) push(ctx context.Context, route routes.Route, req *assembled) (*Payload, error) {
	if err := b.queue.enter(ctx); err != nil {
		return nil, err
	}
	defer b.queue.leave()
	return b.makeRequest(ctx, route, req, 0)
}

// makeRequest issues one attempt and classifies the outcome, re-entering
// itself for 429s (free), timeouts and 5xxs (both consume the retry
// budget). The caller already holds the head-of-line slot.
func (b *bucketHandler) makeRequest(ctx context.Context, route routes.Route, req *assembled, retries int) (*Payload, error) {
	opts := &b.mgr.opts
	clock := b.mgr.clock

	if err := b.mgr.waitGlobal(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	now := clock.Now()
	if b.limited(now) {
		wait := b.reset.Sub(now)
		limit := b.limit
		b.mu.Unlock()
		b.mgr.emitRateLimited(RateLimitData{
			TimeToReset:    wait,
			Limit:          limit,
			Method:         req.method,
			Hash:           b.hash,
			Route:          route.Bucket,
			MajorParameter: b.major,
		})
		b.mgr.rec.ObserveRateLimit(metrics.ScopeBucket, wait)
		if err := clock.Sleep(ctx, wait); err != nil {
			return nil, err
		}
	} else {
		b.mu.Unlock()
	}

	res, body, elapsed, err := b.send(ctx, req)
	if err != nil {
		if ctx.Err() == nil && isTimeout(err) && retries < opts.Retries {
			b.mgr.rec.ObserveRetry(metrics.ReasonTimeout)
			b.mgr.emitDebug(fmt.Sprintf(
				"Request timed out, retrying: %s %s (attempt %d/%d)",
				req.method, req.url, retries+1, opts.Retries,
			))
			return b.makeRequest(ctx, route, req, retries+1)
		}
		return nil, err
	}

	headers := parseRateLimitHeaders(res.Header, clock.Now(), opts.Offset)
	b.applyHeaders(headers)
	if headers.hash != "" && headers.hash != b.hash {
		b.mgr.emitDebug(fmt.Sprintf(
			"Bucket hash update: %s -> %s for %s %s",
			b.hash, headers.hash, req.method, route.Bucket,
		))
		b.mgr.setHash(req.method, route.Bucket, headers.hash)
	}
	if headers.global {
		b.mgr.emitDebug(fmt.Sprintf(
			"Global rate limit hit, pausing all requests for %v", headers.retryAfter,
		))
		b.mgr.startGlobalTimeout(headers.retryAfter)
	}

	b.mgr.rec.ObserveRequest(req.method, route.Bucket, res.StatusCode, elapsed)

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return &Payload{ContentType: res.Header.Get("Content-Type"), Body: body}, nil

	case res.StatusCode == http.StatusTooManyRequests:
		b.mgr.emitDebug(fmt.Sprintf(
			"429 on %s %s (bucket %s), sleeping %v",
			req.method, route.Bucket, b.hash, headers.retryAfter,
		))
		if !headers.global {
			b.mgr.rec.ObserveRateLimit(metrics.ScopeBucket, headers.retryAfter)
		}
		if err := clock.Sleep(ctx, headers.retryAfter); err != nil {
			return nil, err
		}
		// Not a client or server fault, so the retry budget is untouched.
		return b.makeRequest(ctx, route, req, retries)

	case res.StatusCode >= 500 && res.StatusCode < 600:
		if retries < opts.Retries {
			b.mgr.rec.ObserveRetry(metrics.ReasonServerError)
			return b.makeRequest(ctx, route, req, retries+1)
		}
		return nil, &errors.HTTPError{
			StatusText: http.StatusText(res.StatusCode),
			Status:     res.StatusCode,
			Method:     req.method,
			URL:        req.url,
		}

	case res.StatusCode >= 400:
		apiErr := &errors.APIError{
			Status: res.StatusCode,
			Method: req.method,
			URL:    req.url,
			Raw:    body,
		}
		if message, code, fields, ok := parsers.APIErrorFromBody(body); ok {
			apiErr.Message = message
			apiErr.Code = code
			apiErr.FieldErrors = fields
		} else {
			apiErr.Message = string(body)
		}
		return nil, apiErr

	default:
		return nil, nil
	}
}

// send issues a single HTTP attempt bounded by the configured timeout and
// drains the body so the connection can be reused.
func (b *bucketHandler) send(ctx context.Context, req *assembled) (*http.Response, []byte, time.Duration, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, b.mgr.opts.Timeout)
	defer cancel()

	var reader io.Reader
	if len(req.body) > 0 {
		reader = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(attemptCtx, req.method, req.url, reader)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("build request %s %s: %w", req.method, req.url, err)
	}
	httpReq.Header = req.header.Clone()

	start := b.mgr.clock.Now()
	res, err := b.mgr.opts.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, nil, 0, err
	}
	body, readErr := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if readErr != nil {
		return nil, nil, 0, fmt.Errorf("read response body: %w", readErr)
	}
	return res, body, b.mgr.clock.Now().Sub(start), nil
}

// applyHeaders installs the advertised window in one critical section so
// a concurrent limited() check never observes remaining=0 with a stale
// reset.
func (b *bucketHandler) applyHeaders(h rateLimitHeaders) {
	b.mu.Lock()
	b.limit = h.limit
	b.remaining = h.remaining
	b.reset = h.reset
	b.mu.Unlock()
}

// isTimeout recognizes an attempt cancelled by its own deadline. The
// caller is responsible for checking that the parent context is still
// live before retrying.
func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	if stderrors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return true
	}
	return stderrors.Is(err, context.DeadlineExceeded)
}
