package errors

import (
	"errors"
	"fmt"
	"strings"
)

// A subset of the JSON error codes Discord returns on 4xx responses.
// See: https://discord.com/developers/docs/topics/opcodes-and-status-codes#json
const (
	DISCORD_GeneralError       = 0
	DISCORD_UnknownChannel     = 10003
	DISCORD_UnknownGuild       = 10004
	DISCORD_UnknownMessage     = 10008
	DISCORD_UnknownUser        = 10013
	DISCORD_UnknownWebhook     = 10015
	DISCORD_Unauthorized       = 40001
	DISCORD_MissingAccess      = 50001
	DISCORD_CannotSendEmpty    = 50006
	DISCORD_CannotMessageUser  = 50007
	DISCORD_MissingPermissions = 50013
	DISCORD_InvalidFormBody    = 50035
)

// APIError is returned when Discord answers a request with a 4xx status
// other than 429. It carries the decoded error body alongside the request
// that triggered it.
type APIError struct {
	// Message is the human-readable error from the response body.
	Message string
	// Code is the Discord JSON error code, 0 when the body carried none.
	Code int
	// Status is the HTTP status code of the response.
	Status int
	Method string
	URL    string
	// FieldErrors holds flattened "path: message" lines when the body
	// included a nested field-error tree.
	FieldErrors []string
	// Raw is the undecoded response body.
	Raw []byte
}

var _ error = &APIError{}

func (e *APIError) Error() string {
	msg := fmt.Sprintf(
		"Discord API error %d (http %d) on %s %s: %s",
		e.Code, e.Status, e.Method, e.URL, e.Message,
	)
	if len(e.FieldErrors) > 0 {
		msg += "\n" + strings.Join(e.FieldErrors, "\n")
	}
	return msg
}

// Is lets errors.Is(err, &APIError{}) match any APIError regardless of
// field values. Without it, only pointer identity would match.
// See: https://go.dev/doc/faq#nil_error
func (e *APIError) Is(other error) bool {
	var err *APIError
	return errors.As(other, &err) && err != nil
}

// HTTPError is returned when a request still fails with a 5xx status after
// all retry attempts are spent.
type HTTPError struct {
	StatusText string
	Status     int
	Method     string
	URL        string
}

var _ error = &HTTPError{}

func (e *HTTPError) Error() string {
	return fmt.Sprintf(
		"http %d (%s) on %s %s after retries exhausted",
		e.Status, e.StatusText, e.Method, e.URL,
	)
}

func (e *HTTPError) Is(other error) bool {
	var err *HTTPError
	return errors.As(other, &err) && err != nil
}

// ConfigurationError is returned synchronously from request assembly when
// the request cannot be built, e.g. an authenticated call with no token set.
type ConfigurationError struct {
	Reason string
}

var _ error = &ConfigurationError{}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Is(other error) bool {
	var err *ConfigurationError
	return errors.As(other, &err) && err != nil
}

// ValidationError is returned synchronously for invalid inputs to pure
// builders, e.g. an unsupported CDN image extension or size.
type ValidationError struct {
	Param   string
	Value   any
	Message string
}

var _ error = &ValidationError{}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Message)
}

func (e *ValidationError) Is(other error) bool {
	var err *ValidationError
	return errors.As(other, &err) && err != nil
}
