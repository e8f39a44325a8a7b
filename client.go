package rest

import (
	"net/http"

	"github.com/Favna/rest/api"
	"github.com/Favna/rest/cdn"
	"github.com/Favna/rest/ratelimit"
)

// Client is the public entry point: typed resource facades over one
// shared, rate-limit-aware request manager and connection pool.
type Client struct {
	httpClient *http.Client
	manager    *ratelimit.Manager
	cdn        *cdn.CDN

	users    *api.Users
	channels *api.Channels
	guilds   *api.Guilds
	webhooks *api.Webhooks
}

// New builds a Client. token may be empty when DISCORD_TOKEN is set in
// the environment, or when it will be supplied later via SetToken.
func New(token string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport

	manager := ratelimit.NewManager(ratelimit.Options{
		Token:             token,
		UserAgentAppendix: cfg.userAgentAppendix,
		Offset:            cfg.offset,
		Retries:           cfg.retries,
		Timeout:           cfg.timeout,
		Version:           cfg.version,
		APIBase:           cfg.apiBase,
		HTTPClient:        httpClient,
		SweepInterval:     cfg.sweepInterval,
		Logger:            cfg.logger,
		Metrics:           cfg.metrics,
		OnRateLimited:     cfg.onRateLimited,
		OnDebug:           cfg.onDebug,
	})

	return &Client{
		httpClient: httpClient,
		manager:    manager,
		cdn:        cdn.New(cfg.cdnBase),
		users:      api.NewUsersApi(manager, cfg.logger),
		channels:   api.NewChannelsApi(manager, cfg.logger),
		guilds:     api.NewGuildsApi(manager, cfg.logger),
		webhooks:   api.NewWebhooksApi(manager, cfg.logger),
	}
}

func (c *Client) Users() *api.Users {
	return c.users
}

func (c *Client) Channels() *api.Channels {
	return c.channels
}

func (c *Client) Guilds() *api.Guilds {
	return c.guilds
}

func (c *Client) Webhooks() *api.Webhooks {
	return c.webhooks
}

// Manager exposes the underlying dispatcher for raw requests that have no
// typed facade yet.
func (c *Client) Manager() *ratelimit.Manager {
	return c.manager
}

func (c *Client) CDN() *cdn.CDN {
	return c.cdn
}

// SetToken swaps the credential used by all subsequent requests.
func (c *Client) SetToken(token string) {
	c.manager.SetToken(token)
}

// Close stops the manager's background work. The Client must not be used
// afterwards.
func (c *Client) Close() error {
	return c.manager.Close()
}
