// Package ratelimit implements the rate-limit-aware request dispatcher at
// the core of the client. Logical requests are serialized through
// per-bucket FIFO queues that honor the token-bucket limits Discord
// advertises in response headers, both per route and globally. Bucket
// hashes are learned at runtime: a route starts on a placeholder queue and
// migrates once X-RateLimit-Bucket reveals its true bucket.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/metrics"
	"github.com/Favna/rest/routes"
)

// Manager owns the bucket hash table, the per-bucket queues, the shared
// global-timeout latch and the sweeper that drops idle queues. One Manager
// (and so one connection pool) serves the whole process; construct it once
// and Close it on shutdown.
type Manager struct {
	opts  Options
	log   logger.Logger
	rec   metrics.Recorder
	clock Clock

	mu     sync.Mutex
	token  string
	hashes map[string]string
	queues map[string]*bucketHandler
	// global is non-nil while the global rate limit is in force. It is
	// closed, after being cleared, when the pause ends; handlers wait on
	// it before issuing anything.
	global chan struct{}

	lifeCtx   context.Context
	stop      context.CancelFunc
	bg        errgroup.Group
	closeOnce sync.Once
}

func NewManager(opts Options) *Manager {
	opts = opts.withDefaults()
	lifeCtx, stop := context.WithCancel(context.Background())
	m := &Manager{
		opts:    opts,
		log:     opts.Logger,
		rec:     opts.Metrics,
		clock:   opts.Clock,
		token:   opts.Token,
		hashes:  make(map[string]string),
		queues:  make(map[string]*bucketHandler),
		lifeCtx: lifeCtx,
		stop:    stop,
	}
	m.bg.Go(m.sweep)
	return m
}

// Queue assembles req and runs it through the bucket queue for its route,
// blocking until the response arrives or ctx is done. The returned Payload
// is nil for informational and redirect statuses.
func (m *Manager) Queue(ctx context.Context, req Request) (*Payload, error) {
	asm, err := m.assemble(req)
	if err != nil {
		return nil, err
	}
	return m.handlerFor(req.Method, req.Route).push(ctx, req.Route, asm)
}

// QueueJSON is Queue followed by decoding a JSON body into out. out may be
// nil to discard the body.
func (m *Manager) QueueJSON(ctx context.Context, req Request, out any) error {
	payload, err := m.Queue(ctx, req)
	if err != nil {
		return err
	}
	return payload.Unmarshal(out)
}

// SetToken replaces the credential used by subsequent request assembly.
func (m *Manager) SetToken(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

// Token returns the current credential, possibly empty.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Close stops the sweeper and any pending global-timeout timer and waits
// for them to exit. In-flight requests are not interrupted; cancel their
// contexts for that.
func (m *Manager) Close() error {
	m.closeOnce.Do(m.stop)
	return m.bg.Wait()
}

// handlerFor resolves the queue for (method, route): the learned bucket
// hash, or a stable placeholder when the route has not revealed one yet,
// combined with the route's major parameter.
func (m *Manager) handlerFor(method string, route routes.Route) *bucketHandler {
	m.mu.Lock()
	hash, ok := m.hashes[method+"-"+route.Bucket]
	if !ok {
		hash = fmt.Sprintf("UnknownHash(%s)", route.Bucket)
	}
	id := hash + ":" + route.MajorParameter
	handler, ok := m.queues[id]
	if !ok {
		handler = newBucketHandler(m, hash, route.MajorParameter)
		m.queues[id] = handler
	}
	n := len(m.queues)
	m.mu.Unlock()

	if !ok {
		m.rec.SetBuckets(n)
	}
	return handler
}

// setHash records the server-assigned bucket hash for (method, route).
// The in-flight request stays on its old handler; the next Queue call
// observes the new hash and lands on the new one.
func (m *Manager) setHash(method, route, hash string) {
	m.mu.Lock()
	m.hashes[method+"-"+route] = hash
	m.mu.Unlock()
}

// waitGlobal blocks while a global rate limit pause is in force.
func (m *Manager) waitGlobal(ctx context.Context) error {
	m.mu.Lock()
	latch := m.global
	m.mu.Unlock()
	if latch == nil {
		return nil
	}
	m.rec.ObserveRateLimit(metrics.ScopeGlobal, 0)
	select {
	case <-latch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startGlobalTimeout installs a global pause of d. A pause already in
// force wins: both observations come from the same server clock, so the
// first writer is as good as any.
func (m *Manager) startGlobalTimeout(d time.Duration) {
	m.mu.Lock()
	if m.global != nil {
		m.mu.Unlock()
		return
	}
	latch := make(chan struct{})
	m.global = latch
	m.mu.Unlock()

	m.bg.Go(func() error {
		// Close tears the sleep down early; the latch must still clear
		// and release so no handler stays parked forever.
		_ = m.clock.Sleep(m.lifeCtx, d)
		m.mu.Lock()
		m.global = nil
		m.mu.Unlock()
		close(latch)
		return nil
	})
}

// sweep periodically drops handlers that hold no work and no live limit.
// The cadence bounds memory under any steady-state request pattern; it is
// not part of the correctness contract.
func (m *Manager) sweep() error {
	ticker := time.NewTicker(m.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.lifeCtx.Done():
			return nil
		case <-ticker.C:
			now := m.clock.Now()
			m.mu.Lock()
			before := len(m.queues)
			for id, handler := range m.queues {
				if handler.inactive(now) {
					delete(m.queues, id)
				}
			}
			after := len(m.queues)
			m.mu.Unlock()
			if after != before {
				m.log.Debugf("ratelimit: swept %d inactive buckets, %d remain", before-after, after)
			}
			m.rec.SetBuckets(after)
		}
	}
}
