package api

import (
	"context"
	"net/http"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/ratelimit"
	"github.com/Favna/rest/routes"
	"github.com/Favna/rest/types"
)

// Guilds implements the /guilds API methods.
// See: https://discord.com/developers/docs/resources/guild
type Guilds struct {
	api *apiClient
}

func NewGuildsApi(mgr *ratelimit.Manager, logger logger.Logger) *Guilds {
	return &Guilds{
		api: newApiClient(mgr, logger),
	}
}

func (g *Guilds) Guild(ctx context.Context, guildID string) (*types.Guild, error) {
	var guild types.Guild
	if err := g.api.get(ctx, routes.Guild(guildID), nil, &guild); err != nil {
		return nil, err
	}
	return &guild, nil
}

func (g *Guilds) Modify(ctx context.Context, guildID string, params types.ModifyGuildParams, reason string) (*types.Guild, error) {
	var guild types.Guild
	if err := g.api.patch(ctx, routes.Guild(guildID), params, reason, &guild); err != nil {
		return nil, err
	}
	return &guild, nil
}

func (g *Guilds) Channels(ctx context.Context, guildID string) ([]types.Channel, error) {
	var channels []types.Channel
	if err := g.api.get(ctx, routes.GuildChannels(guildID), nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (g *Guilds) CreateChannel(ctx context.Context, guildID string, params types.CreateChannelParams, reason string) (*types.Channel, error) {
	var channel types.Channel
	err := g.api.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.GuildChannels(guildID),
		Data:   params,
		Reason: reason,
	}, &channel)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (g *Guilds) Member(ctx context.Context, guildID, userID string) (*types.Member, error) {
	var member types.Member
	if err := g.api.get(ctx, routes.GuildMember(guildID, userID), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Members pages through a guild's members; after is the highest user ID
// of the previous page.
func (g *Guilds) Members(ctx context.Context, guildID, after string, limit int) ([]types.Member, error) {
	var params []ratelimit.Param
	if after != "" {
		params = append(params, ratelimit.Param{Key: "after", Value: after})
	}
	if limit > 0 {
		params = append(params, ratelimit.Param{Key: "limit", Value: limit})
	}
	var members []types.Member
	if err := g.api.get(ctx, routes.GuildMembers(guildID), params, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (g *Guilds) ModifyMember(ctx context.Context, guildID, userID string, params types.ModifyMemberParams, reason string) error {
	return g.api.patch(ctx, routes.GuildMember(guildID, userID), params, reason, nil)
}

func (g *Guilds) AddMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	return g.api.put(ctx, routes.GuildMemberRole(guildID, userID, roleID), nil, reason)
}

func (g *Guilds) RemoveMemberRole(ctx context.Context, guildID, userID, roleID, reason string) error {
	return g.api.delete(ctx, routes.GuildMemberRole(guildID, userID, roleID), reason)
}

func (g *Guilds) KickMember(ctx context.Context, guildID, userID, reason string) error {
	return g.api.delete(ctx, routes.GuildMember(guildID, userID), reason)
}

func (g *Guilds) Bans(ctx context.Context, guildID string) ([]types.Ban, error) {
	var bans []types.Ban
	if err := g.api.get(ctx, routes.GuildBans(guildID), nil, &bans); err != nil {
		return nil, err
	}
	return bans, nil
}

func (g *Guilds) Ban(ctx context.Context, guildID, userID string) (*types.Ban, error) {
	var ban types.Ban
	if err := g.api.get(ctx, routes.GuildBan(guildID, userID), nil, &ban); err != nil {
		return nil, err
	}
	return &ban, nil
}

// CreateBan bans a user, deleting deleteMessageDays days of their
// messages (0-7).
func (g *Guilds) CreateBan(ctx context.Context, guildID, userID string, deleteMessageDays int, reason string) error {
	var query []ratelimit.Param
	if deleteMessageDays > 0 {
		query = append(query, ratelimit.Param{Key: "delete_message_days", Value: deleteMessageDays})
	}
	if reason != "" {
		query = append(query, ratelimit.Param{Key: "reason", Value: reason})
	}
	return g.api.do(ctx, ratelimit.Request{
		Method: http.MethodPut,
		Route:  routes.GuildBan(guildID, userID),
		Query:  query,
		Reason: reason,
	}, nil)
}

func (g *Guilds) RemoveBan(ctx context.Context, guildID, userID, reason string) error {
	return g.api.delete(ctx, routes.GuildBan(guildID, userID), reason)
}

func (g *Guilds) Roles(ctx context.Context, guildID string) ([]types.Role, error) {
	var roles []types.Role
	if err := g.api.get(ctx, routes.GuildRoles(guildID), nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (g *Guilds) CreateRole(ctx context.Context, guildID string, params types.CreateRoleParams, reason string) (*types.Role, error) {
	var role types.Role
	err := g.api.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.GuildRoles(guildID),
		Data:   params,
		Reason: reason,
	}, &role)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (g *Guilds) DeleteRole(ctx context.Context, guildID, roleID, reason string) error {
	return g.api.delete(ctx, routes.GuildRole(guildID, roleID), reason)
}

// PruneCount reports how many members a prune with the given inactivity
// window would remove.
func (g *Guilds) PruneCount(ctx context.Context, guildID string, days int) (int, error) {
	var query []ratelimit.Param
	if days > 0 {
		query = append(query, ratelimit.Param{Key: "days", Value: days})
	}
	var count types.PruneCount
	if err := g.api.get(ctx, routes.GuildPrune(guildID), query, &count); err != nil {
		return 0, err
	}
	return count.Pruned, nil
}

func (g *Guilds) BeginPrune(ctx context.Context, guildID string, days int, reason string) (int, error) {
	var query []ratelimit.Param
	if days > 0 {
		query = append(query, ratelimit.Param{Key: "days", Value: days})
	}
	var count types.PruneCount
	err := g.api.do(ctx, ratelimit.Request{
		Method: http.MethodPost,
		Route:  routes.GuildPrune(guildID),
		Query:  query,
		Reason: reason,
	}, &count)
	if err != nil {
		return 0, err
	}
	return count.Pruned, nil
}
