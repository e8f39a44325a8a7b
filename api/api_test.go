package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Favna/rest/ratelimit"
)

const testToken = "__TOKEN__"

// recordedRequest is one request as seen by the fake API server, with the
// body already drained so handlers can assert on it after the fact.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		status := f.status
		resBody := f.body
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resBody))
	}
}

func (f *fakeAPI) request(i int) recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// newTestManager spins up a fake API answering every request with the
// given status and body, and a manager pointed at it.
func newTestManager(t *testing.T, status int, body string) (*ratelimit.Manager, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{status: status, body: body}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	m := ratelimit.NewManager(ratelimit.Options{
		Token:   testToken,
		APIBase: server.URL,
	})
	t.Cleanup(func() { _ = m.Close() })
	return m, fake
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}
