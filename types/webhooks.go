package types

type Webhook struct {
	Id        string `json:"id"`
	Type      int    `json:"type"`
	GuildId   string `json:"guild_id,omitempty"`
	ChannelId string `json:"channel_id"`
	User      *User  `json:"user,omitempty"`
	Name      string `json:"name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Token     string `json:"token,omitempty"`
}

type CreateWebhookParams struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type ModifyWebhookParams struct {
	Name      string `json:"name,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	ChannelId string `json:"channel_id,omitempty"`
}

type ExecuteWebhookParams struct {
	Content   string  `json:"content,omitempty"`
	Username  string  `json:"username,omitempty"`
	AvatarUrl string  `json:"avatar_url,omitempty"`
	Tts       bool    `json:"tts,omitempty"`
	Embeds    []Embed `json:"embeds,omitempty"`
}
