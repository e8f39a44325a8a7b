package types

type Channel struct {
	Id                   string      `json:"id"`
	Type                 int         `json:"type"`
	GuildId              string      `json:"guild_id,omitempty"`
	Position             int         `json:"position,omitempty"`
	Name                 string      `json:"name,omitempty"`
	Topic                string      `json:"topic,omitempty"`
	Nsfw                 bool        `json:"nsfw,omitempty"`
	LastMessageId        string      `json:"last_message_id,omitempty"`
	Bitrate              int         `json:"bitrate,omitempty"`
	UserLimit            int         `json:"user_limit,omitempty"`
	RateLimitPerUser     int         `json:"rate_limit_per_user,omitempty"`
	Recipients           []User      `json:"recipients,omitempty"`
	Icon                 string      `json:"icon,omitempty"`
	OwnerId              string      `json:"owner_id,omitempty"`
	ApplicationId        string      `json:"application_id,omitempty"`
	ParentId             string      `json:"parent_id,omitempty"`
	PermissionOverwrites []Overwrite `json:"permission_overwrites,omitempty"`
}

type Overwrite struct {
	Id    string `json:"id"`
	Type  string `json:"type"`
	Allow int64  `json:"allow"`
	Deny  int64  `json:"deny"`
}

type ModifyChannelParams struct {
	Name             string `json:"name,omitempty"`
	Position         *int   `json:"position,omitempty"`
	Topic            string `json:"topic,omitempty"`
	Nsfw             *bool  `json:"nsfw,omitempty"`
	RateLimitPerUser *int   `json:"rate_limit_per_user,omitempty"`
	Bitrate          *int   `json:"bitrate,omitempty"`
	UserLimit        *int   `json:"user_limit,omitempty"`
	ParentId         string `json:"parent_id,omitempty"`
}

type Message struct {
	Id              string       `json:"id"`
	ChannelId       string       `json:"channel_id"`
	GuildId         string       `json:"guild_id,omitempty"`
	Author          User         `json:"author"`
	Content         string       `json:"content"`
	Timestamp       string       `json:"timestamp"`
	EditedTimestamp string       `json:"edited_timestamp,omitempty"`
	Tts             bool         `json:"tts"`
	MentionEveryone bool         `json:"mention_everyone"`
	Mentions        []User       `json:"mentions,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty"`
	Embeds          []Embed      `json:"embeds,omitempty"`
	Pinned          bool         `json:"pinned"`
	WebhookId       string       `json:"webhook_id,omitempty"`
	Type            int          `json:"type"`
	Flags           int          `json:"flags,omitempty"`
}

type Attachment struct {
	Id       string `json:"id"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	Url      string `json:"url"`
	ProxyUrl string `json:"proxy_url"`
	Height   int    `json:"height,omitempty"`
	Width    int    `json:"width,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Type        string       `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`
	Url         string       `json:"url,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Color       int          `json:"color,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Thumbnail   *EmbedImage  `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type EmbedFooter struct {
	Text    string `json:"text"`
	IconUrl string `json:"icon_url,omitempty"`
}

type EmbedImage struct {
	Url    string `json:"url,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

type EmbedAuthor struct {
	Name    string `json:"name,omitempty"`
	Url     string `json:"url,omitempty"`
	IconUrl string `json:"icon_url,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type CreateMessageParams struct {
	Content string `json:"content,omitempty"`
	Nonce   string `json:"nonce,omitempty"`
	Tts     bool   `json:"tts,omitempty"`
	Embed   *Embed `json:"embed,omitempty"`
}

type EditMessageParams struct {
	Content string `json:"content,omitempty"`
	Embed   *Embed `json:"embed,omitempty"`
	Flags   *int   `json:"flags,omitempty"`
}

type BulkDeleteParams struct {
	Messages []string `json:"messages"`
}
