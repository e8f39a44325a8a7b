package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorParameters(t *testing.T) {
	testCases := []struct {
		name   string
		route  Route
		path   string
		bucket string
		major  string
	}{
		{
			name:   "channel message generalizes the message id",
			route:  ChannelMessage("42", "9000"),
			path:   "/channels/42/messages/9000",
			bucket: "/channels/42/messages/{message.id}",
			major:  "42",
		},
		{
			name:   "guild member generalizes the user id",
			route:  GuildMember("42", "7"),
			path:   "/guilds/42/members/7",
			bucket: "/guilds/42/members/{user.id}",
			major:  "42",
		},
		{
			name:   "reactions generalize emoji and user",
			route:  ChannelMessageReactionUser("1", "2", "e", "3"),
			path:   "/channels/1/messages/2/reactions/e/3",
			bucket: "/channels/1/messages/{message.id}/reactions/{emoji}/{user.id}",
			major:  "1",
		},
		{
			name:   "webhook token is generalized but webhook id is major",
			route:  WebhookWithToken("5", "secret"),
			path:   "/webhooks/5/secret",
			bucket: "/webhooks/5/{webhook.token}",
			major:  "5",
		},
		{
			name:   "user routes have no major parameter",
			route:  User("7"),
			path:   "/users/7",
			bucket: "/users/{user.id}",
			major:  GlobalParameter,
		},
		{
			name:   "invite code is generalized",
			route:  Invite("abc"),
			path:   "/invites/abc",
			bucket: "/invites/{invite.code}",
			major:  GlobalParameter,
		},
		{
			name:   "static route",
			route:  GatewayBot(),
			path:   "/gateway/bot",
			bucket: "/gateway/bot",
			major:  GlobalParameter,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.path, tt.route.Path)
			assert.Equal(t, tt.bucket, tt.route.Bucket)
			assert.Equal(t, tt.major, tt.route.MajorParameter)
		})
	}
}

func TestDistinctMajorsShareBucketShape(t *testing.T) {
	a := ChannelMessage("1", "10")
	b := ChannelMessage("2", "20")
	assert.NotEqual(t, a.Bucket, b.Bucket)
	assert.NotEqual(t, a.MajorParameter, b.MajorParameter)

	// Same channel, different messages: one bucket.
	c := ChannelMessage("1", "30")
	assert.Equal(t, a.Bucket, c.Bucket)
	assert.Equal(t, a.MajorParameter, c.MajorParameter)
}
