package rest

import (
	"net/http"
	"time"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/metrics"
	"github.com/Favna/rest/ratelimit"
)

type config struct {
	// transport specifies the HTTP transport mechanism for making
	// requests. It's useful for mocking or if users want to add extra
	// logging, headers, etc. The transport is shared by every rate
	// limit bucket so connections are kept alive across requests.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout bounds each individual HTTP attempt; timed-out attempts
	// are retried up to the retry budget.
	// default: 15 seconds
	timeout time.Duration

	// retries is the retry budget for timed-out and 5xx requests.
	// default: 1
	retries int

	// offset pads server-provided reset and retry delays against clock
	// skew.
	// default: 100 milliseconds
	offset time.Duration

	// version selects the Discord API version.
	// default: 7
	version int

	apiBase           string
	cdnBase           string
	userAgentAppendix string
	sweepInterval     time.Duration

	// logger provides logging functionality for all internal client
	// operations.
	// default: logger.Noop
	logger logger.Logger

	// metrics receives request, rate limit and retry observations.
	// default: metrics.Noop
	metrics metrics.Recorder

	onRateLimited ratelimit.RateLimitedFunc
	onDebug       ratelimit.DebugFunc
}

func defaultConfig() *config {
	return &config{
		transport: http.DefaultTransport,
		logger:    &logger.Noop{},
		metrics:   &metrics.Noop{},
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithRetries(retries int) ConfigOption {
	return func(c *config) {
		c.retries = retries
	}
}

func WithOffset(offset time.Duration) ConfigOption {
	return func(c *config) {
		c.offset = offset
	}
}

func WithAPIVersion(version int) ConfigOption {
	return func(c *config) {
		c.version = version
	}
}

func WithAPIBase(base string) ConfigOption {
	return func(c *config) {
		c.apiBase = base
	}
}

func WithCDNBase(base string) ConfigOption {
	return func(c *config) {
		c.cdnBase = base
	}
}

func WithUserAgentAppendix(appendix string) ConfigOption {
	return func(c *config) {
		c.userAgentAppendix = appendix
	}
}

func WithSweepInterval(interval time.Duration) ConfigOption {
	return func(c *config) {
		c.sweepInterval = interval
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithMetrics(metrics metrics.Recorder) ConfigOption {
	return func(c *config) {
		c.metrics = metrics
	}
}

// WithRateLimitListener registers a callback fired before a request
// sleeps on an exhausted bucket.
func WithRateLimitListener(fn ratelimit.RateLimitedFunc) ConfigOption {
	return func(c *config) {
		c.onRateLimited = fn
	}
}

// WithDebugListener registers a callback fired on noteworthy dispatcher
// observations (429s, bucket hash changes, global limit pauses).
func WithDebugListener(fn ratelimit.DebugFunc) ConfigOption {
	return func(c *config) {
		c.onDebug = fn
	}
}
