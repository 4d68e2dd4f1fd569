package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockServer creates an httptest.Server with common test patterns.
// It provides a fluent API for setting up expected request verification
// and response configuration.
type mockServer struct {
	t          *testing.T
	handler    http.HandlerFunc
	expectPath string
	expectMeth string
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t}
}

// ExpectPath sets the expected request path and verifies it in the handler.
func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

// ExpectGET expects a GET request.
func (m *mockServer) ExpectGET() *mockServer {
	m.expectMeth = http.MethodGet
	return m
}

// ExpectPOST expects a POST request.
func (m *mockServer) ExpectPOST() *mockServer {
	m.expectMeth = http.MethodPost
	return m
}

// Handler sets a custom handler function. The function receives the writer
// and request after path/method verification has passed.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

// RespondRaw responds with body verbatim as JSON.
func (m *mockServer) RespondRaw(body string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
	return m
}

// Build creates the httptest.Server and closes it when the test ends.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	})

	server := httptest.NewServer(handler)
	m.t.Cleanup(server.Close)
	return server
}

// routedServer serves fixed JSON bodies by path and 404s everything else.
func routedServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

// isolateConfig keeps config discovery away from the developer's real files.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JUSTWATCH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

// runCLI executes the root command with args and captures its output.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolateConfig(t)

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

const (
	interstellarJSON = `{"id":1,"title":"Interstellar","full_path":"/us/movie/interstellar","tmdb_popularity":33.7,
		"object_type":"movie","original_title":"Interstellar","original_release_year":2014,
		"offers":[
			{"monetization_type":"flatrate","provider_id":8,"urls":{"standard_web":"https://www.netflix.com/title/70305903"},
			 "presentation_type":"hd","date_created_provider_id":"a","date_created":"2020-01-01","country":"US"},
			{"monetization_type":"flatrate","provider_id":8,"urls":{"standard_web":"https://www.netflix.com/title/70305903"},
			 "presentation_type":"sd","date_created_provider_id":"a","date_created":"2020-01-01","country":"US"},
			{"monetization_type":"rent","provider_id":2,"retail_price":3.99,"currency":"USD",
			 "urls":{"standard_web":"https://itunes.apple.com/us/movie/id919051418"},
			 "presentation_type":"hd","date_created_provider_id":"b","date_created":"2020-01-01","country":"US"}
		],
		"scoring":[{"provider_type":"imdb:score","value":8.6}]}`

	scienceJSON = `{"id":2,"title":"The Science of Interstellar","full_path":"/us/movie/science","tmdb_popularity":1.2,
		"object_type":"movie","original_title":"The Science of Interstellar","scoring":[]}`

	providersJSON = `[
		{"id":8,"technical_name":"netflix","short_name":"nfx","clear_name":"Netflix"},
		{"id":2,"technical_name":"itunes","short_name":"itu","clear_name":"Apple iTunes"}
	]`
)
