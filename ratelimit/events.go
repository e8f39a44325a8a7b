package ratelimit

import "time"

// RateLimitData describes a request that is about to wait for a bucket
// window to reset. It is passed to the RateLimited listener before the
// handler sleeps.
type RateLimitData struct {
	// TimeToReset is how long the handler will sleep before re-issuing.
	TimeToReset time.Duration
	// Limit is the total tokens in the bucket window, -1 if not yet
	// learned from the server.
	Limit          int
	Method         string
	Hash           string
	Route          string
	MajorParameter string
}

// Listener callbacks run synchronously at the observation point. Panics
// are swallowed so a listener can never break the request path; anything
// slow should hand off to its own goroutine.
type (
	RateLimitedFunc func(RateLimitData)
	DebugFunc       func(message string)
)

func (m *Manager) emitRateLimited(data RateLimitData) {
	if m.opts.OnRateLimited == nil {
		return
	}
	defer func() { _ = recover() }()
	m.opts.OnRateLimited(data)
}

func (m *Manager) emitDebug(message string) {
	m.log.Debugf("%s", message)
	if m.opts.OnDebug == nil {
		return
	}
	defer func() { _ = recover() }()
	m.opts.OnDebug(message)
}
