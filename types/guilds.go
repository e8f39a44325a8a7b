package types

type Guild struct {
	Id                string   `json:"id"`
	Name              string   `json:"name"`
	Icon              string   `json:"icon,omitempty"`
	Splash            string   `json:"splash,omitempty"`
	DiscoverySplash   string   `json:"discovery_splash,omitempty"`
	OwnerId           string   `json:"owner_id"`
	Region            string   `json:"region"`
	AfkChannelId      string   `json:"afk_channel_id,omitempty"`
	AfkTimeout        int      `json:"afk_timeout"`
	VerificationLevel int      `json:"verification_level"`
	Roles             []Role   `json:"roles,omitempty"`
	Emojis            []Emoji  `json:"emojis,omitempty"`
	Features          []string `json:"features,omitempty"`
	MfaLevel          int      `json:"mfa_level"`
	ApplicationId     string   `json:"application_id,omitempty"`
	SystemChannelId   string   `json:"system_channel_id,omitempty"`
	VanityUrlCode     string   `json:"vanity_url_code,omitempty"`
	Description       string   `json:"description,omitempty"`
	Banner            string   `json:"banner,omitempty"`
	PremiumTier       int      `json:"premium_tier"`
	PreferredLocale   string   `json:"preferred_locale,omitempty"`
	MemberCount       int      `json:"member_count,omitempty"`
}

type Role struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Hoist       bool   `json:"hoist"`
	Position    int    `json:"position"`
	Permissions int64  `json:"permissions"`
	Managed     bool   `json:"managed"`
	Mentionable bool   `json:"mentionable"`
}

type Emoji struct {
	Id            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Roles         []string `json:"roles,omitempty"`
	User          *User    `json:"user,omitempty"`
	RequireColons bool     `json:"require_colons,omitempty"`
	Managed       bool     `json:"managed,omitempty"`
	Animated      bool     `json:"animated,omitempty"`
	Available     bool     `json:"available,omitempty"`
}

type Member struct {
	User     *User    `json:"user,omitempty"`
	Nick     string   `json:"nick,omitempty"`
	Roles    []string `json:"roles"`
	JoinedAt string   `json:"joined_at"`
	Deaf     bool     `json:"deaf"`
	Mute     bool     `json:"mute"`
}

type Ban struct {
	Reason string `json:"reason,omitempty"`
	User   User   `json:"user"`
}

type ModifyGuildParams struct {
	Name              string `json:"name,omitempty"`
	Region            string `json:"region,omitempty"`
	VerificationLevel *int   `json:"verification_level,omitempty"`
	AfkChannelId      string `json:"afk_channel_id,omitempty"`
	AfkTimeout        *int   `json:"afk_timeout,omitempty"`
	Icon              string `json:"icon,omitempty"`
	OwnerId           string `json:"owner_id,omitempty"`
	SystemChannelId   string `json:"system_channel_id,omitempty"`
}

type CreateChannelParams struct {
	Name             string `json:"name"`
	Type             int    `json:"type,omitempty"`
	Topic            string `json:"topic,omitempty"`
	Bitrate          int    `json:"bitrate,omitempty"`
	UserLimit        int    `json:"user_limit,omitempty"`
	RateLimitPerUser int    `json:"rate_limit_per_user,omitempty"`
	Position         int    `json:"position,omitempty"`
	ParentId         string `json:"parent_id,omitempty"`
	Nsfw             bool   `json:"nsfw,omitempty"`
}

type ModifyMemberParams struct {
	Nick      string   `json:"nick,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Mute      *bool    `json:"mute,omitempty"`
	Deaf      *bool    `json:"deaf,omitempty"`
	ChannelId string   `json:"channel_id,omitempty"`
}

type CreateRoleParams struct {
	Name        string `json:"name,omitempty"`
	Permissions int64  `json:"permissions,omitempty"`
	Color       int    `json:"color,omitempty"`
	Hoist       bool   `json:"hoist,omitempty"`
	Mentionable bool   `json:"mentionable,omitempty"`
}

type PruneCount struct {
	Pruned int `json:"pruned"`
}
