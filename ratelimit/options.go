package ratelimit

import (
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/metrics"
)

// LibraryVersion is reported in the User-Agent of every request.
const LibraryVersion = "1.0.0"

const repositoryURL = "https://github.com/Favna/rest"

// Options configures a Manager. The zero value is usable: every field is
// defaulted by NewManager per the API contract.
type Options struct {
	// Token is the bot token used for the Authorization header. When
	// empty, the DISCORD_TOKEN environment variable is consulted at
	// construction time.
	Token string

	// UserAgentAppendix is appended to the mandatory DiscordBot
	// User-Agent. Defaults to the Go runtime version.
	UserAgentAppendix string

	// Offset is added to every server-provided reset and retry delay to
	// absorb clock skew between us and the API. Default 100ms; pass a
	// negative value to disable the offset entirely.
	Offset time.Duration

	// Retries is how many times a timed-out or 5xx request is re-issued
	// before the failure surfaces. 429s never consume the budget.
	// Default 1; pass a negative value to disable retries.
	Retries int

	// Timeout bounds each individual HTTP attempt. Default 15s.
	Timeout time.Duration

	// Version selects the API version path segment. Default 7.
	Version int

	// APIBase is the API origin. Default https://discord.com/api.
	APIBase string

	// HTTPClient issues all requests. It is shared by every bucket so
	// connections are kept alive across the process. Default: a client
	// over http.DefaultTransport with no client-level timeout (attempt
	// timeouts are enforced per request).
	HTTPClient *http.Client

	// SweepInterval is the cadence of the inactive-bucket sweeper.
	// Default 5 minutes.
	SweepInterval time.Duration

	Logger  logger.Logger
	Metrics metrics.Recorder
	Clock   Clock

	// OnRateLimited fires before a handler sleeps on a local bucket
	// window. OnDebug fires on noteworthy observations: 429 responses,
	// bucket hash discovery, global limit activation.
	OnRateLimited RateLimitedFunc
	OnDebug       DebugFunc
}

func (o Options) withDefaults() Options {
	if o.Token == "" {
		o.Token = os.Getenv("DISCORD_TOKEN")
	}
	if o.UserAgentAppendix == "" {
		o.UserAgentAppendix = "golang/" + strings.TrimPrefix(runtime.Version(), "go")
	}
	if o.Offset < 0 {
		o.Offset = 0
	} else if o.Offset == 0 {
		o.Offset = 100 * time.Millisecond
	}
	if o.Retries == 0 {
		o.Retries = 1
	} else if o.Retries < 0 {
		o.Retries = 0
	}
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.Version <= 0 {
		o.Version = 7
	}
	if o.APIBase == "" {
		o.APIBase = "https://discord.com/api"
	}
	o.APIBase = strings.TrimSuffix(o.APIBase, "/")
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Transport: http.DefaultTransport}
	}
	if o.SweepInterval <= 0 {
		o.SweepInterval = 5 * time.Minute
	}
	if o.Logger == nil {
		o.Logger = &logger.Noop{}
	}
	if o.Metrics == nil {
		o.Metrics = &metrics.Noop{}
	}
	if o.Clock == nil {
		o.Clock = systemClock{}
	}
	return o
}

func (o Options) userAgent() string {
	return "DiscordBot (" + repositoryURL + ", " + LibraryVersion + ") " + o.UserAgentAppendix
}
