package ratelimit

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Favna/rest/errors"
	"github.com/Favna/rest/routes"
)

func newAssemblyManager(t *testing.T, mutate ...func(*Options)) *Manager {
	t.Helper()
	return newTestManager(t, &scriptedTransport{}, newFakeClock(), mutate...)
}

func TestAssemble_URLAndQueryRoundTrip(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{
		Method: http.MethodGet,
		Route:  routes.ChannelMessages("42"),
		Query: []Param{
			{Key: "around", Value: "9000"},
			{Key: "before", Value: nil}, // dropped
			{Key: "limit", Value: 50},
		},
	})
	require.NoError(t, err)

	parsed, err := url.Parse(asm.url)
	require.NoError(t, err)
	assert.Equal(t, "/api/v7/channels/42/messages", parsed.Path)
	assert.Equal(t, url.Values{
		"around": {"9000"},
		"limit":  {"50"},
	}, parsed.Query())
	// Submission order survives encoding.
	assert.Equal(t, "around=9000&limit=50", parsed.RawQuery)
}

func TestAssemble_EmptyQueryOmitsQuestionMark(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{
		Method: http.MethodGet,
		Route:  routes.CurrentUser(),
		Query:  []Param{{Key: "skipped", Value: nil}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/v7/users/@me", asm.url)
}

func TestAssemble_MandatoryHeadersCannotBeOverridden(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{
		Method: http.MethodGet,
		Route:  routes.CurrentUser(),
		Headers: http.Header{
			"Authorization":         {"Bearer sneaky"},
			"User-Agent":            {"custom"},
			"X-Ratelimit-Precision": {"second"},
			"X-Custom":              {"kept"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bot test-token", asm.header.Get("Authorization"))
	assert.Equal(t, "millisecond", asm.header.Get("X-RateLimit-Precision"))
	assert.Contains(t, asm.header.Get("User-Agent"), "DiscordBot (")
	assert.Contains(t, asm.header.Get("User-Agent"), LibraryVersion)
	assert.Equal(t, "kept", asm.header.Get("X-Custom"))
}

func TestAssemble_NoTokenFailsSynchronously(t *testing.T) {
	m := newAssemblyManager(t)
	m.SetToken("")

	_, err := m.assemble(Request{Method: http.MethodGet, Route: routes.CurrentUser()})
	var cfgErr *errors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAssemble_NoAuthSkipsAuthorization(t *testing.T) {
	m := newAssemblyManager(t)
	m.SetToken("")

	asm, err := m.assemble(Request{
		Method: http.MethodGet,
		Route:  routes.WebhookWithToken("1", "tok"),
		NoAuth: true,
	})
	require.NoError(t, err)
	assert.Empty(t, asm.header.Get("Authorization"))
}

func TestAssemble_AuditLogReasonIsEncoded(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{
		Method: http.MethodDelete,
		Route:  routes.Channel("42"),
		Reason: "spam & abuse",
	})
	require.NoError(t, err)

	encoded := asm.header.Get("X-Audit-Log-Reason")
	assert.NotEqual(t, "spam & abuse", encoded)
	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, "spam & abuse", decoded)
}

func TestAssemble_JSONBody(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{
		Method: http.MethodPost,
		Route:  routes.ChannelMessages("42"),
		Data:   map[string]string{"content": "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", asm.header.Get("Content-Type"))
	assert.JSONEq(t, `{"content":"hi"}`, string(asm.body))
}

func TestAssemble_MultipartWithPayloadJSON(t *testing.T) {
	m := newAssemblyManager(t)

	fileBytes := []byte{0x1, 0x2, 0x3}
	asm, err := m.assemble(Request{
		Method: http.MethodPost,
		Route:  routes.ChannelMessages("42"),
		Data:   map[string]string{"content": "hi"},
		Files:  []File{{Name: "f", Data: fileBytes}},
	})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(asm.header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	// Mandatory headers still in place alongside the multipart type.
	assert.Equal(t, "Bot test-token", asm.header.Get("Authorization"))
	assert.Contains(t, asm.header.Get("User-Agent"), "DiscordBot (")

	reader := multipart.NewReader(strings.NewReader(string(asm.body)), params["boundary"])
	parts := map[string][]byte{}
	filenames := map[string]string{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = data
		filenames[part.FormName()] = part.FileName()
	}

	assert.Equal(t, fileBytes, parts["f"])
	assert.Equal(t, "f", filenames["f"])

	var payload map[string]string
	require.NoError(t, json.Unmarshal(parts["payload_json"], &payload))
	assert.Equal(t, map[string]string{"content": "hi"}, payload)
}

func TestAssemble_DefaultMethodIsGet(t *testing.T) {
	m := newAssemblyManager(t)

	asm, err := m.assemble(Request{Route: routes.Gateway(), NoAuth: true})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, asm.method)
}
