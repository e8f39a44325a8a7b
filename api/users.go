package api

import (
	"context"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/ratelimit"
	"github.com/Favna/rest/routes"
	"github.com/Favna/rest/types"
)

// Users implements the /users API methods.
// See: https://discord.com/developers/docs/resources/user
type Users struct {
	api *apiClient
}

func NewUsersApi(mgr *ratelimit.Manager, logger logger.Logger) *Users {
	return &Users{
		api: newApiClient(mgr, logger),
	}
}

func (u *Users) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := u.api.get(ctx, routes.CurrentUser(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) User(ctx context.Context, userID string) (*types.User, error) {
	var user types.User
	if err := u.api.get(ctx, routes.User(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) ModifyMe(ctx context.Context, params types.ModifyCurrentUserParams) (*types.User, error) {
	var user types.User
	if err := u.api.patch(ctx, routes.CurrentUser(), params, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyGuilds pages through the current user's guilds. before and after are
// optional guild IDs; limit 0 means the server default.
func (u *Users) MyGuilds(ctx context.Context, before, after string, limit int) ([]types.Guild, error) {
	query := []ratelimit.Param{}
	if before != "" {
		query = append(query, ratelimit.Param{Key: "before", Value: before})
	}
	if after != "" {
		query = append(query, ratelimit.Param{Key: "after", Value: after})
	}
	if limit > 0 {
		query = append(query, ratelimit.Param{Key: "limit", Value: limit})
	}
	var guilds []types.Guild
	if err := u.api.get(ctx, routes.CurrentUserGuilds(), query, &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

func (u *Users) LeaveGuild(ctx context.Context, guildID string) error {
	return u.api.delete(ctx, routes.CurrentUserGuild(guildID), "")
}

// CreateDM opens (or reuses) a DM channel with the given user.
func (u *Users) CreateDM(ctx context.Context, recipientID string) (*types.Channel, error) {
	var channel types.Channel
	params := types.CreateDMParams{RecipientId: recipientID}
	if err := u.api.post(ctx, routes.CurrentUserChannels(), params, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (u *Users) Connections(ctx context.Context) ([]types.Connection, error) {
	var connections []types.Connection
	if err := u.api.get(ctx, routes.CurrentUserConnections(), nil, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}
