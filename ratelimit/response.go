package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Payload is a successfully decoded response body.
type Payload struct {
	ContentType string
	Body        []byte
}

// IsJSON reports whether the body is JSON per the response Content-Type.
// A missing Content-Type counts as raw bytes.
func (p *Payload) IsJSON() bool {
	return strings.HasPrefix(p.ContentType, "application/json")
}

// Unmarshal decodes a JSON body into out. Non-JSON payloads and empty
// bodies are left alone and out is untouched.
func (p *Payload) Unmarshal(out any) error {
	if p == nil || out == nil || len(p.Body) == 0 || !p.IsJSON() {
		return nil
	}
	return json.Unmarshal(p.Body, out)
}

// rateLimitHeaders is the bucket state advertised by one response.
type rateLimitHeaders struct {
	// limit is -1 when the header is absent (bucket size unknown).
	limit int
	// remaining defaults to 1 so an uninformative response never wedges
	// the bucket.
	remaining int
	// reset is the wall time the window reopens.
	reset time.Time
	// hash is the server-assigned bucket hash, empty if not sent.
	hash string
	// retryAfter is the normalized Retry-After delay, 0 if not sent.
	retryAfter time.Duration
	// global reports whether this response tripped the global limit.
	global bool
}

// parseRateLimitHeaders interprets the rate limit headers of a response.
//
// Retry-After needs unit sniffing: Discord sends milliseconds, but a 429
// coming from Cloudflare's edge (recognizable by the absence of a Via
// header) is in seconds. offset is added to reset and retryAfter when the
// corresponding header is present; an absent Reset-After yields
// reset = now with no offset, matching the upstream behavior.
func parseRateLimitHeaders(h http.Header, now time.Time, offset time.Duration) rateLimitHeaders {
	parsed := rateLimitHeaders{limit: -1, remaining: 1, reset: now}

	if v := h.Get("X-RateLimit-Limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			parsed.limit = limit
		}
	}
	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if remaining, err := strconv.Atoi(v); err == nil {
			parsed.remaining = remaining
		}
	}
	if v := h.Get("X-RateLimit-Reset-After"); v != "" {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil {
			parsed.reset = now.
				Add(time.Duration(seconds * float64(time.Second))).
				Add(offset)
		}
	}
	parsed.hash = h.Get("X-RateLimit-Bucket")

	if v := h.Get("Retry-After"); v != "" {
		if value, err := strconv.ParseFloat(v, 64); err == nil {
			unit := time.Millisecond
			if h.Get("Via") == "" {
				unit = time.Second
			}
			parsed.retryAfter = time.Duration(value*float64(unit)) + offset
		}
	}

	parsed.global = h.Get("X-RateLimit-Global") != ""
	return parsed
}
