package ratelimit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"
)

// fakeClock advances instantly on Sleep and records every sleep. When a
// gate is installed, sleepers additionally block until it is closed, which
// lets tests hold a global-timeout pause open.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
	gate  chan struct{}
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.slept = append(c.slept, d)
	gate := c.gate
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (c *fakeClock) sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.slept...)
}

func (c *fakeClock) openGate() chan struct{} {
	gate := make(chan struct{})
	c.mu.Lock()
	c.gate = gate
	c.mu.Unlock()
	return gate
}

// scriptedTransport replays a fixed sequence of responses (or transport
// errors) and records every request it sees, body included.
type scriptedTransport struct {
	mu        sync.Mutex
	steps     []scriptedStep
	requests  []*http.Request
	bodies    [][]byte
	seenTimes []time.Time
}

type scriptedStep struct {
	res *http.Response
	err error
}

var _ http.RoundTripper = &scriptedTransport{}

func (t *scriptedTransport) script(steps ...scriptedStep) {
	t.mu.Lock()
	t.steps = append(t.steps, steps...)
	t.mu.Unlock()
}

func (t *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)
	t.bodies = append(t.bodies, body)
	t.seenTimes = append(t.seenTimes, time.Now())
	if len(t.steps) == 0 {
		return nil, fmt.Errorf("scriptedTransport: no response scripted for %s %s", req.Method, req.URL)
	}
	step := t.steps[0]
	t.steps = t.steps[1:]
	return step.res, step.err
}

func (t *scriptedTransport) requestCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

func (t *scriptedTransport) request(i int) *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requests[i]
}

func respond(res *http.Response) scriptedStep {
	return scriptedStep{res: res}
}

func fail(err error) scriptedStep {
	return scriptedStep{err: err}
}

func newResponse(status int, headers map[string]string, body string) *http.Response {
	header := http.Header{}
	for name, value := range headers {
		header.Set(name, value)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func jsonHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	for name, value := range extra {
		headers[name] = value
	}
	return headers
}

// timeoutError mimics a net error from an attempt that hit its deadline.
type timeoutError struct{}

func (timeoutError) Error() string { return "fake timeout" }

func (timeoutError) Timeout() bool { return true }

func newTestManager(t *testing.T, transport *scriptedTransport, clock *fakeClock, mutate ...func(*Options)) *Manager {
	t.Helper()
	opts := Options{
		Token:      "test-token",
		Clock:      clock,
		HTTPClient: &http.Client{Transport: transport},
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	m := NewManager(opts)
	t.Cleanup(func() { _ = m.Close() })
	return m
}
