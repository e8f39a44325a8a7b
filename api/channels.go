package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/ratelimit"
	"github.com/Favna/rest/routes"
	"github.com/Favna/rest/types"
)

// Channels implements the /channels API methods.
// See: https://discord.com/developers/docs/resources/channel
type Channels struct {
	api *apiClient
}

func NewChannelsApi(mgr *ratelimit.Manager, logger logger.Logger) *Channels {
	return &Channels{
		api: newApiClient(mgr, logger),
	}
}

func (c *Channels) Channel(ctx context.Context, channelID string) (*types.Channel, error) {
	var channel types.Channel
	if err := c.api.get(ctx, routes.Channel(channelID), nil, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (c *Channels) Modify(ctx context.Context, channelID string, params types.ModifyChannelParams, reason string) (*types.Channel, error) {
	var channel types.Channel
	if err := c.api.patch(ctx, routes.Channel(channelID), params, reason, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (c *Channels) Delete(ctx context.Context, channelID, reason string) error {
	return c.api.delete(ctx, routes.Channel(channelID), reason)
}

// MessagesQuery narrows a Messages listing. At most one of Around, Before
// and After may be set; empty fields are omitted from the query string.
type MessagesQuery struct {
	Around string
	Before string
	After  string
	Limit  int
}

func (c *Channels) Messages(ctx context.Context, channelID string, query MessagesQuery) ([]types.Message, error) {
	var params []ratelimit.Param
	if query.Around != "" {
		params = append(params, ratelimit.Param{Key: "around", Value: query.Around})
	}
	if query.Before != "" {
		params = append(params, ratelimit.Param{Key: "before", Value: query.Before})
	}
	if query.After != "" {
		params = append(params, ratelimit.Param{Key: "after", Value: query.After})
	}
	if query.Limit > 0 {
		params = append(params, ratelimit.Param{Key: "limit", Value: query.Limit})
	}
	var messages []types.Message
	if err := c.api.get(ctx, routes.ChannelMessages(channelID), params, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Channels) Message(ctx context.Context, channelID, messageID string) (*types.Message, error) {
	var message types.Message
	if err := c.api.get(ctx, routes.ChannelMessage(channelID, messageID), nil, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// CreateMessage posts a message, optionally with file attachments. With
// files present the request goes out as multipart/form-data and params
// ride along as the payload_json field.
func (c *Channels) CreateMessage(ctx context.Context, channelID string, params types.CreateMessageParams, files ...ratelimit.File) (*types.Message, error) {
	var message types.Message
	err := c.api.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.ChannelMessages(channelID),
		Data:   params,
		Files:  files,
	}, &message)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Channels) EditMessage(ctx context.Context, channelID, messageID string, params types.EditMessageParams) (*types.Message, error) {
	var message types.Message
	if err := c.api.patch(ctx, routes.ChannelMessage(channelID, messageID), params, "", &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Channels) DeleteMessage(ctx context.Context, channelID, messageID, reason string) error {
	return c.api.delete(ctx, routes.ChannelMessage(channelID, messageID), reason)
}

// BulkDelete removes 2-100 messages younger than two weeks in one call.
func (c *Channels) BulkDelete(ctx context.Context, channelID string, messageIDs []string) error {
	params := types.BulkDeleteParams{Messages: messageIDs}
	return c.api.post(ctx, routes.ChannelBulkDelete(channelID), params, nil)
}

// CreateReaction adds the current user's reaction. emoji is either a
// unicode emoji or a "name:id" custom emoji; it is escaped here.
func (c *Channels) CreateReaction(ctx context.Context, channelID, messageID, emoji string) error {
	route := routes.ChannelMessageReactionUser(channelID, messageID, url.PathEscape(emoji), "@me")
	return c.api.put(ctx, route, nil, "")
}

func (c *Channels) DeleteOwnReaction(ctx context.Context, channelID, messageID, emoji string) error {
	route := routes.ChannelMessageReactionUser(channelID, messageID, url.PathEscape(emoji), "@me")
	return c.api.delete(ctx, route, "")
}

func (c *Channels) DeleteAllReactions(ctx context.Context, channelID, messageID string) error {
	return c.api.delete(ctx, routes.ChannelMessageAllReactions(channelID, messageID), "")
}

func (c *Channels) Typing(ctx context.Context, channelID string) error {
	return c.api.post(ctx, routes.ChannelTyping(channelID), nil, nil)
}

func (c *Channels) Pins(ctx context.Context, channelID string) ([]types.Message, error) {
	var messages []types.Message
	if err := c.api.get(ctx, routes.ChannelPins(channelID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Channels) Pin(ctx context.Context, channelID, messageID, reason string) error {
	return c.api.put(ctx, routes.ChannelPin(channelID, messageID), nil, reason)
}

func (c *Channels) Unpin(ctx context.Context, channelID, messageID, reason string) error {
	return c.api.delete(ctx, routes.ChannelPin(channelID, messageID), reason)
}
