package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuy/jsonbox-go/pkg/jsonbox"
)

const (
	testBoxID    = "00000000000000000000"
	testRecordID = "11111111111111111111"
	contentJSON  = "application/json; charset=utf-8"
)

// Data is the record type used across client tests.
type Data struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// mockRoute describes one expected exchange with the fake service.
type mockRoute struct {
	Method     string
	Path       string
	RawQuery   string
	StatusCode int
	Body       string
	// RequestBody, when set, is compared against the received body as JSON.
	RequestBody string
}

// newMockServer serves a single route and fails the test on anything else.
func newMockServer(t *testing.T, route mockRoute) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, route.Method, request.Method)
		assert.Equal(t, route.Path, request.URL.Path)
		assert.Equal(t, route.RawQuery, request.URL.RawQuery)

		if route.RequestBody != "" {
			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, route.RequestBody, string(body))
		}

		writer.Header().Set("Content-Type", contentJSON)
		writer.WriteHeader(route.StatusCode)
		_, _ = writer.Write([]byte(route.Body))
	}))
	t.Cleanup(server.Close)

	return server
}

// NewTestClient creates a Box pointed at baseURL.
func NewTestClient[T any](t *testing.T, baseURL string) *Box[T] {
	t.Helper()

	client, err := New[T](&jsonbox.Config{BoxID: testBoxID, BaseURL: baseURL})
	require.NoError(t, err)

	return client
}
