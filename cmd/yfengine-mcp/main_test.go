package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyForwardsMessages(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := new(bytes.Buffer)
		body.ReadFrom(r.Body)
		received = body.Bytes()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`))
	}))
	defer srv.Close()

	proxy := &StdioProxy{
		serverURL:  srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n")
	var out bytes.Buffer

	require.NoError(t, proxy.RunWithIO(in, &out))

	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`, string(received))
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`+"\n", out.String())
}

func TestProxySkipsBlankLines(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	}))
	defer srv.Close()

	proxy := &StdioProxy{serverURL: srv.URL, httpClient: srv.Client()}

	in := strings.NewReader("\n\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n")
	var out bytes.Buffer

	require.NoError(t, proxy.RunWithIO(in, &out))
	assert.Equal(t, 1, calls)
}

func TestProxyServerErrorBecomesJSONRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	proxy := &StdioProxy{serverURL: srv.URL, httpClient: srv.Client()}

	in := strings.NewReader(`{"jsonrpc":"2.0","id":7,"method":"tools/list"}` + "\n")
	var out bytes.Buffer

	require.NoError(t, proxy.RunWithIO(in, &out))

	var resp struct {
		ID    int `json:"id"`
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, -32000, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "502")
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, json.RawMessage(`42`), extractID([]byte(`{"jsonrpc":"2.0","id":42}`)))
	assert.Equal(t, json.RawMessage(`"abc"`), extractID([]byte(`{"jsonrpc":"2.0","id":"abc"}`)))
	assert.Equal(t, json.RawMessage(`null`), extractID([]byte(`not json`)))
	assert.Equal(t, json.RawMessage(`null`), extractID([]byte(`{"jsonrpc":"2.0"}`)))
}
