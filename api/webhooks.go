package api

import (
	"context"
	"net/http"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/ratelimit"
	"github.com/Favna/rest/routes"
	"github.com/Favna/rest/types"
)

// Webhooks implements the /webhooks API methods.
// See: https://discord.com/developers/docs/resources/webhook
type Webhooks struct {
	api *apiClient
}

func NewWebhooksApi(mgr *ratelimit.Manager, logger logger.Logger) *Webhooks {
	return &Webhooks{
		api: newApiClient(mgr, logger),
	}
}

func (w *Webhooks) ChannelWebhooks(ctx context.Context, channelID string) ([]types.Webhook, error) {
	var webhooks []types.Webhook
	if err := w.api.get(ctx, routes.ChannelWebhooks(channelID), nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

func (w *Webhooks) GuildWebhooks(ctx context.Context, guildID string) ([]types.Webhook, error) {
	var webhooks []types.Webhook
	if err := w.api.get(ctx, routes.GuildWebhooks(guildID), nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

func (w *Webhooks) Create(ctx context.Context, channelID string, params types.CreateWebhookParams, reason string) (*types.Webhook, error) {
	var webhook types.Webhook
	err := w.api.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.ChannelWebhooks(channelID),
		Data:   params,
		Reason: reason,
	}, &webhook)
	if err != nil {
		return nil, err
	}
	return &webhook, nil
}

func (w *Webhooks) Webhook(ctx context.Context, webhookID string) (*types.Webhook, error) {
	var webhook types.Webhook
	if err := w.api.get(ctx, routes.Webhook(webhookID), nil, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// WebhookWithToken fetches a webhook without bot authentication; the
// token in the route authorizes the call.
func (w *Webhooks) WebhookWithToken(ctx context.Context, webhookID, token string) (*types.Webhook, error) {
	var webhook types.Webhook
	err := w.api.do(ctx, ratelimit.Request{
		Method: http.MethodGet,
		Route:  routes.WebhookWithToken(webhookID, token),
		NoAuth: true,
	}, &webhook)
	if err != nil {
		return nil, err
	}
	return &webhook, nil
}

func (w *Webhooks) Modify(ctx context.Context, webhookID string, params types.ModifyWebhookParams, reason string) (*types.Webhook, error) {
	var webhook types.Webhook
	if err := w.api.patch(ctx, routes.Webhook(webhookID), params, reason, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

func (w *Webhooks) Delete(ctx context.Context, webhookID, reason string) error {
	return w.api.delete(ctx, routes.Webhook(webhookID), reason)
}

// Execute fires a webhook without bot authentication. With wait=true the
// created message is returned; otherwise the result is nil. Files switch
// the body to multipart/form-data.
func (w *Webhooks) Execute(ctx context.Context, webhookID, token string, params types.ExecuteWebhookParams, wait bool, files ...ratelimit.File) (*types.Message, error) {
	var query []ratelimit.Param
	if wait {
		query = append(query, ratelimit.Param{Key: "wait", Value: true})
	}
	req := ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.WebhookWithToken(webhookID, token),
		Query:  query,
		Data:   params,
		Files:  files,
		NoAuth: true,
	}
	if !wait {
		return nil, w.api.do(ctx, req, nil)
	}
	var message types.Message
	if err := w.api.do(ctx, req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}
