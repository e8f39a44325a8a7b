// Package metrics defines the instrumentation hooks the request manager
// reports into. The default Noop recorder makes instrumentation opt-in;
// NewPrometheus wires the hooks to a prometheus registry.
package metrics

import "time"

// Rate limit scopes reported to ObserveRateLimit.
const (
	ScopeBucket = "bucket"
	ScopeGlobal = "global"
)

// Retry reasons reported to ObserveRetry.
const (
	ReasonTimeout     = "timeout"
	ReasonServerError = "server-error"
)

// Recorder receives observations from the request manager. Implementations
// must be safe for concurrent use and must not block; they are called on
// the request path.
type Recorder interface {
	// ObserveRequest is called once per completed HTTP exchange with the
	// generalized route (not the concrete path, to bound cardinality).
	ObserveRequest(method, route string, status int, duration time.Duration)

	// ObserveRateLimit is called when a request is delayed by a local
	// bucket (ScopeBucket) or the global limit (ScopeGlobal).
	ObserveRateLimit(scope string, delay time.Duration)

	// ObserveRetry is called each time a request attempt is re-issued
	// after a timeout or 5xx response.
	ObserveRetry(reason string)

	// SetBuckets reports the number of live bucket queues.
	SetBuckets(n int)
}

type Noop struct {
}

var _ Recorder = &Noop{}

func (n Noop) ObserveRequest(_, _ string, _ int, _ time.Duration) {
}

func (n Noop) ObserveRateLimit(_ string, _ time.Duration) {
}

func (n Noop) ObserveRetry(_ string) {
}

func (n Noop) SetBuckets(_ int) {
}
