package parsers

import (
	"encoding/json"
	"sort"
)

// Discord reports per-field validation failures as a nested object tree
// where each failing leaf carries an "_errors" array:
//
//	{"code": 50035, "message": "Invalid Form Body", "errors":
//	  {"embed": {"fields": {"0": {"name": {"_errors":
//	    [{"code": "BASE_TYPE_REQUIRED", "message": "This field is required"}]}}}}}}
//
// This package flattens that tree into "path: message (code)" lines, and is
// the one place response error bodies are decoded.

type errorBody struct {
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Errors  map[string]any `json:"errors"`
}

type fieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIErrorFromBody decodes a 4xx response body. It reports ok=false when
// the body does not decode as a JSON object with the fields of Discord's
// error shape, in which case callers should fall back to the raw bytes.
// Any JSON object decodes with ok=true; fields it lacks stay zero.
func APIErrorFromBody(data []byte) (message string, code int, fields []string, ok bool) {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return "", 0, nil, false
	}
	return body.Message, body.Code, FieldErrors(body.Errors), true
}

// FieldErrors flattens a nested error tree into sorted "path: message (code)"
// lines. Unknown shapes are skipped rather than failing the whole decode.
func FieldErrors(tree map[string]any) []string {
	if len(tree) == 0 {
		return nil
	}
	var out []string
	flatten("", tree, &out)
	sort.Strings(out)
	return out
}

func flatten(path string, node map[string]any, out *[]string) {
	for key, child := range node {
		if key == "_errors" {
			appendLeaf(path, child, out)
			continue
		}
		sub, isMap := child.(map[string]any)
		if !isMap {
			continue
		}
		flatten(joinPath(path, key), sub, out)
	}
}

func appendLeaf(path string, raw any, out *[]string) {
	items, isList := raw.([]any)
	if !isList {
		return
	}
	for _, item := range items {
		// Round-trip each entry through json to reuse the fieldError
		// struct instead of hand-walking map[string]any twice.
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var fe fieldError
		if err := json.Unmarshal(data, &fe); err != nil || fe.Message == "" {
			continue
		}
		line := path + ": " + fe.Message
		if fe.Code != "" {
			line += " (" + fe.Code + ")"
		}
		*out = append(*out, line)
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
