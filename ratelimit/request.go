package ratelimit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Favna/rest/errors"
	"github.com/Favna/rest/routes"
)

// Param is one query string pair. Params keep their submission order in
// the assembled URL; params with a nil Value are dropped.
type Param struct {
	Key   string
	Value any
}

// File is one multipart attachment.
type File struct {
	Name string
	Data []byte
}

// Request is a logical API request before assembly.
type Request struct {
	// Method is the HTTP verb, e.g. http.MethodGet.
	Method string

	// Route locates the endpoint and its rate limit bucket.
	Route routes.Route

	Query   []Param
	Headers http.Header

	// Data, when non-nil, is JSON-encoded as the request body. When
	// Files is also set it becomes the multipart payload_json field.
	Data any

	// Files switches the body to multipart/form-data.
	Files []File

	// NoAuth skips the Authorization header, e.g. for webhook token
	// routes.
	NoAuth bool

	// Reason, when set, is sent URL-encoded as X-Audit-Log-Reason.
	Reason string
}

// assembled is a Request rendered down to the wire: everything needed to
// (re-)issue the HTTP call any number of times.
type assembled struct {
	method string
	url    string
	header http.Header
	body   []byte
}

func (m *Manager) assemble(req Request) (*assembled, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	u := m.opts.APIBase + "/v" + strconv.Itoa(m.opts.Version) + req.Route.Path
	if qs := encodeQuery(req.Query); qs != "" {
		u += "?" + qs
	}

	header := http.Header{}
	for name, values := range req.Headers {
		header[name] = append([]string(nil), values...)
	}

	var body []byte
	switch {
	case len(req.Files) > 0:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		for _, file := range req.Files {
			part, err := writer.CreateFormFile(file.Name, file.Name)
			if err != nil {
				return nil, fmt.Errorf("create multipart part %q: %w", file.Name, err)
			}
			if _, err := part.Write(file.Data); err != nil {
				return nil, fmt.Errorf("write multipart part %q: %w", file.Name, err)
			}
		}
		if req.Data != nil {
			payload, err := json.Marshal(req.Data)
			if err != nil {
				return nil, fmt.Errorf("encode payload_json: %w", err)
			}
			if err := writer.WriteField("payload_json", string(payload)); err != nil {
				return nil, fmt.Errorf("write payload_json: %w", err)
			}
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("finish multipart body: %w", err)
		}
		header.Set("Content-Type", writer.FormDataContentType())
		body = buf.Bytes()
	case req.Data != nil:
		data, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		header.Set("Content-Type", "application/json")
		body = data
	}

	// Mandatory headers go last so callers cannot override them.
	header.Set("User-Agent", m.opts.userAgent())
	header.Set("X-RateLimit-Precision", "millisecond")
	if !req.NoAuth {
		token := m.Token()
		if token == "" {
			return nil, &errors.ConfigurationError{
				Reason: "request requires auth but no token is set",
			}
		}
		header.Set("Authorization", "Bot "+token)
	}
	if req.Reason != "" {
		header.Set("X-Audit-Log-Reason", url.PathEscape(req.Reason))
	}

	return &assembled{
		method: req.Method,
		url:    u,
		header: header,
		body:   body,
	}, nil
}

// encodeQuery form-urlencodes params in submission order, dropping nil
// values. url.Values would sort keys, which loses the caller's order.
func encodeQuery(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(p.Value)))
	}
	return b.String()
}
