package routes

// Route identifies a Discord REST endpoint for rate limit bucketing.
//
// Path is the concrete endpoint with every ID filled in. Bucket is the
// generalized form used as part of the rate limit queue key: major
// parameters (guild, channel and webhook IDs) stay literal because the
// server partitions bucket state on them, every other ID is replaced with
// a placeholder so that, for example, all messages of one channel share a
// bucket.
type Route struct {
	Path           string
	Bucket         string
	MajorParameter string
}

// GlobalParameter is the major parameter used for routes that have none.
const GlobalParameter = "global"

func global(path string) Route {
	return Route{Path: path, Bucket: path, MajorParameter: GlobalParameter}
}

// Gateway

func Gateway() Route {
	return global("/gateway")
}

func GatewayBot() Route {
	return global("/gateway/bot")
}

// Users

func CurrentUser() Route {
	return global("/users/@me")
}

func User(userID string) Route {
	return Route{
		Path:           "/users/" + userID,
		Bucket:         "/users/{user.id}",
		MajorParameter: GlobalParameter,
	}
}

func CurrentUserGuilds() Route {
	return global("/users/@me/guilds")
}

func CurrentUserGuild(guildID string) Route {
	return Route{
		Path:           "/users/@me/guilds/" + guildID,
		Bucket:         "/users/@me/guilds/{guild.id}",
		MajorParameter: GlobalParameter,
	}
}

func CurrentUserChannels() Route {
	return global("/users/@me/channels")
}

func CurrentUserConnections() Route {
	return global("/users/@me/connections")
}

// Channels

func Channel(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID,
		Bucket:         "/channels/" + channelID,
		MajorParameter: channelID,
	}
}

func ChannelMessages(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages",
		Bucket:         "/channels/" + channelID + "/messages",
		MajorParameter: channelID,
	}
}

func ChannelMessage(channelID, messageID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/" + messageID,
		Bucket:         "/channels/" + channelID + "/messages/{message.id}",
		MajorParameter: channelID,
	}
}

func ChannelMessageCrosspost(channelID, messageID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/" + messageID + "/crosspost",
		Bucket:         "/channels/" + channelID + "/messages/{message.id}/crosspost",
		MajorParameter: channelID,
	}
}

func ChannelBulkDelete(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/bulk-delete",
		Bucket:         "/channels/" + channelID + "/messages/bulk-delete",
		MajorParameter: channelID,
	}
}

func ChannelMessageReaction(channelID, messageID, emoji string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/" + messageID + "/reactions/" + emoji,
		Bucket:         "/channels/" + channelID + "/messages/{message.id}/reactions/{emoji}",
		MajorParameter: channelID,
	}
}

func ChannelMessageReactionUser(channelID, messageID, emoji, userID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/" + messageID + "/reactions/" + emoji + "/" + userID,
		Bucket:         "/channels/" + channelID + "/messages/{message.id}/reactions/{emoji}/{user.id}",
		MajorParameter: channelID,
	}
}

func ChannelMessageAllReactions(channelID, messageID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/messages/" + messageID + "/reactions",
		Bucket:         "/channels/" + channelID + "/messages/{message.id}/reactions",
		MajorParameter: channelID,
	}
}

func ChannelPermission(channelID, overwriteID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/permissions/" + overwriteID,
		Bucket:         "/channels/" + channelID + "/permissions/{overwrite.id}",
		MajorParameter: channelID,
	}
}

func ChannelInvites(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/invites",
		Bucket:         "/channels/" + channelID + "/invites",
		MajorParameter: channelID,
	}
}

func ChannelTyping(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/typing",
		Bucket:         "/channels/" + channelID + "/typing",
		MajorParameter: channelID,
	}
}

func ChannelPins(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/pins",
		Bucket:         "/channels/" + channelID + "/pins",
		MajorParameter: channelID,
	}
}

func ChannelPin(channelID, messageID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/pins/" + messageID,
		Bucket:         "/channels/" + channelID + "/pins/{message.id}",
		MajorParameter: channelID,
	}
}

func ChannelRecipient(channelID, userID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/recipients/" + userID,
		Bucket:         "/channels/" + channelID + "/recipients/{user.id}",
		MajorParameter: channelID,
	}
}

func ChannelWebhooks(channelID string) Route {
	return Route{
		Path:           "/channels/" + channelID + "/webhooks",
		Bucket:         "/channels/" + channelID + "/webhooks",
		MajorParameter: channelID,
	}
}

// Guilds

func Guilds() Route {
	return global("/guilds")
}

func Guild(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID,
		Bucket:         "/guilds/" + guildID,
		MajorParameter: guildID,
	}
}

func GuildPreview(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/preview",
		Bucket:         "/guilds/" + guildID + "/preview",
		MajorParameter: guildID,
	}
}

func GuildChannels(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/channels",
		Bucket:         "/guilds/" + guildID + "/channels",
		MajorParameter: guildID,
	}
}

func GuildMembers(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/members",
		Bucket:         "/guilds/" + guildID + "/members",
		MajorParameter: guildID,
	}
}

func GuildMember(guildID, userID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/members/" + userID,
		Bucket:         "/guilds/" + guildID + "/members/{user.id}",
		MajorParameter: guildID,
	}
}

func GuildCurrentMemberNickname(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/members/@me/nick",
		Bucket:         "/guilds/" + guildID + "/members/@me/nick",
		MajorParameter: guildID,
	}
}

func GuildMemberRole(guildID, userID, roleID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/members/" + userID + "/roles/" + roleID,
		Bucket:         "/guilds/" + guildID + "/members/{user.id}/roles/{role.id}",
		MajorParameter: guildID,
	}
}

func GuildBans(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/bans",
		Bucket:         "/guilds/" + guildID + "/bans",
		MajorParameter: guildID,
	}
}

func GuildBan(guildID, userID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/bans/" + userID,
		Bucket:         "/guilds/" + guildID + "/bans/{user.id}",
		MajorParameter: guildID,
	}
}

func GuildRoles(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/roles",
		Bucket:         "/guilds/" + guildID + "/roles",
		MajorParameter: guildID,
	}
}

func GuildRole(guildID, roleID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/roles/" + roleID,
		Bucket:         "/guilds/" + guildID + "/roles/{role.id}",
		MajorParameter: guildID,
	}
}

func GuildPrune(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/prune",
		Bucket:         "/guilds/" + guildID + "/prune",
		MajorParameter: guildID,
	}
}

func GuildVoiceRegions(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/regions",
		Bucket:         "/guilds/" + guildID + "/regions",
		MajorParameter: guildID,
	}
}

func GuildInvites(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/invites",
		Bucket:         "/guilds/" + guildID + "/invites",
		MajorParameter: guildID,
	}
}

func GuildIntegrations(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/integrations",
		Bucket:         "/guilds/" + guildID + "/integrations",
		MajorParameter: guildID,
	}
}

func GuildWidget(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/widget",
		Bucket:         "/guilds/" + guildID + "/widget",
		MajorParameter: guildID,
	}
}

func GuildVanityURL(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/vanity-url",
		Bucket:         "/guilds/" + guildID + "/vanity-url",
		MajorParameter: guildID,
	}
}

func GuildAuditLogs(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/audit-logs",
		Bucket:         "/guilds/" + guildID + "/audit-logs",
		MajorParameter: guildID,
	}
}

func GuildEmojis(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/emojis",
		Bucket:         "/guilds/" + guildID + "/emojis",
		MajorParameter: guildID,
	}
}

func GuildEmoji(guildID, emojiID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/emojis/" + emojiID,
		Bucket:         "/guilds/" + guildID + "/emojis/{emoji.id}",
		MajorParameter: guildID,
	}
}

func GuildWebhooks(guildID string) Route {
	return Route{
		Path:           "/guilds/" + guildID + "/webhooks",
		Bucket:         "/guilds/" + guildID + "/webhooks",
		MajorParameter: guildID,
	}
}

// Webhooks

func Webhook(webhookID string) Route {
	return Route{
		Path:           "/webhooks/" + webhookID,
		Bucket:         "/webhooks/" + webhookID,
		MajorParameter: webhookID,
	}
}

func WebhookWithToken(webhookID, token string) Route {
	return Route{
		Path:           "/webhooks/" + webhookID + "/" + token,
		Bucket:         "/webhooks/" + webhookID + "/{webhook.token}",
		MajorParameter: webhookID,
	}
}

func WebhookSlack(webhookID, token string) Route {
	return Route{
		Path:           "/webhooks/" + webhookID + "/" + token + "/slack",
		Bucket:         "/webhooks/" + webhookID + "/{webhook.token}/slack",
		MajorParameter: webhookID,
	}
}

func WebhookGitHub(webhookID, token string) Route {
	return Route{
		Path:           "/webhooks/" + webhookID + "/" + token + "/github",
		Bucket:         "/webhooks/" + webhookID + "/{webhook.token}/github",
		MajorParameter: webhookID,
	}
}

// Invites

func Invite(code string) Route {
	return Route{
		Path:           "/invites/" + code,
		Bucket:         "/invites/{invite.code}",
		MajorParameter: GlobalParameter,
	}
}

// Voice

func VoiceRegions() Route {
	return global("/voice/regions")
}

// OAuth2

func OAuth2Application() Route {
	return global("/oauth2/applications/@me")
}
