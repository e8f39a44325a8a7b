package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorFromBody(t *testing.T) {
	body := []byte(`{
		"code": 50035,
		"message": "Invalid Form Body",
		"errors": {
			"embed": {
				"fields": {
					"0": {
						"name": {
							"_errors": [
								{"code": "BASE_TYPE_REQUIRED", "message": "This field is required"}
							]
						}
					}
				}
			},
			"content": {
				"_errors": [
					{"code": "BASE_TYPE_MAX_LENGTH", "message": "Must be 2000 or fewer in length."}
				]
			}
		}
	}`)

	message, code, fields, ok := APIErrorFromBody(body)
	require.True(t, ok)
	assert.Equal(t, "Invalid Form Body", message)
	assert.Equal(t, 50035, code)
	assert.Equal(t, []string{
		"content: Must be 2000 or fewer in length. (BASE_TYPE_MAX_LENGTH)",
		"embed.fields.0.name: This field is required (BASE_TYPE_REQUIRED)",
	}, fields)
}

func TestAPIErrorFromBody_NoFieldTree(t *testing.T) {
	message, code, fields, ok := APIErrorFromBody([]byte(`{"code":50013,"message":"Missing Permissions"}`))
	require.True(t, ok)
	assert.Equal(t, "Missing Permissions", message)
	assert.Equal(t, 50013, code)
	assert.Empty(t, fields)
}

func TestAPIErrorFromBody_NotJSON(t *testing.T) {
	_, _, _, ok := APIErrorFromBody([]byte(`error code: 1015`))
	assert.False(t, ok)
}

func TestFieldErrors_SkipsUnknownShapes(t *testing.T) {
	fields := FieldErrors(map[string]any{
		"good": map[string]any{
			"_errors": []any{map[string]any{"code": "X", "message": "bad value"}},
		},
		"scalar":  "ignored",
		"badLeaf": map[string]any{"_errors": "not a list"},
	})
	assert.Equal(t, []string{"good: bad value (X)"}, fields)
}
