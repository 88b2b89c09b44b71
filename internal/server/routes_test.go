package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yfengine/internal/app"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	a, err := app.NewApp("")
	require.NoError(t, err)

	srv := httptest.NewServer(NewServer(a).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]interface{}
	resp := getJSON(t, srv.URL+"/api/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["uptime"])
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/api/version", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["version"])
}

func TestConfigEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]interface{}
	resp := getJSON(t, srv.URL+"/api/config", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	clients, ok := body["clients"].(map[string]interface{})
	require.True(t, ok)
	yahoo, ok := clients["yahoo"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, yahoo["base_url"])
}

func TestToolCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Server string `json:"server"`
		Tools  []struct {
			Name   string `json:"name"`
			Params []struct {
				Name     string `json:"name"`
				Required bool   `json:"required"`
			} `json:"params"`
		} `json:"tools"`
	}
	resp := getJSON(t, srv.URL+"/api/mcp/tools", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "yahoo_finance_engine", body.Server)
	require.Len(t, body.Tools, 19)

	names := make(map[string]bool)
	for _, tool := range body.Tools {
		names[tool.Name] = true
		require.NotEmpty(t, tool.Params)
		assert.Equal(t, "symbol", tool.Params[0].Name)
		assert.True(t, tool.Params[0].Required)
	}
	assert.True(t, names["get_current_stock_price"])
	assert.True(t, names["get_option_chain"])
	assert.False(t, names["get_news"], "get_news is not in the catalog")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/health", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, HEAD", resp.Header.Get("Allow"))
}

func TestMCPEndpointListsTools(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/mcp", bytes.NewBufferString(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	body := buf.String()

	assert.Contains(t, body, "get_current_stock_price")
	assert.Contains(t, body, "get_sustainability")
	assert.False(t, strings.Contains(body, `"get_news"`), "get_news is not registered")
}
