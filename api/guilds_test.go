package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Favna/rest/logger"
	"github.com/Favna/rest/types"
)

func TestGuilds_Guild(t *testing.T) {
	m, fake := newTestManager(t, 200, mustJSON(t, types.Guild{Id: "42", Name: "g"}))
	guilds := NewGuildsApi(m, &logger.Noop{})

	guild, err := guilds.Guild(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", guild.Id)
	assert.Equal(t, "/v7/guilds/42", fake.request(0).Path)
}

func TestGuilds_CreateBanQueryAndReason(t *testing.T) {
	m, fake := newTestManager(t, 204, "")
	guilds := NewGuildsApi(m, &logger.Noop{})

	err := guilds.CreateBan(context.Background(), "42", "7", 3, "raid")
	require.NoError(t, err)

	req := fake.request(0)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/v7/guilds/42/bans/7", req.Path)
	assert.Equal(t, "delete_message_days=3&reason=raid", req.Query)
	assert.Equal(t, "raid", req.Header.Get("X-Audit-Log-Reason"))
}

func TestGuilds_PruneCount(t *testing.T) {
	m, fake := newTestManager(t, 200, `{"pruned":11}`)
	guilds := NewGuildsApi(m, &logger.Noop{})

	pruned, err := guilds.PruneCount(context.Background(), "42", 7)
	require.NoError(t, err)
	assert.Equal(t, 11, pruned)
	assert.Equal(t, "days=7", fake.request(0).Query)
}

func TestGuilds_MemberRoles(t *testing.T) {
	m, fake := newTestManager(t, 204, "")
	guilds := NewGuildsApi(m, &logger.Noop{})

	require.NoError(t, guilds.AddMemberRole(context.Background(), "42", "7", "3", ""))
	require.NoError(t, guilds.RemoveMemberRole(context.Background(), "42", "7", "3", ""))

	assert.Equal(t, http.MethodPut, fake.request(0).Method)
	assert.Equal(t, http.MethodDelete, fake.request(1).Method)
	assert.Equal(t, "/v7/guilds/42/members/7/roles/3", fake.request(0).Path)
}
