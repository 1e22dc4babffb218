package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinxClient_Send2xxIsSuccess(t *testing.T) {
	var received []byte
	var path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewLinxClient(server.URL, "/api/vendas", 2*time.Second)

	payload := json.RawMessage(`{"id":"v1","total":45.5}`)
	err := c.Send(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "/api/vendas", path)
	assert.JSONEq(t, string(payload), string(received))
}

func TestLinxClient_Non2xxIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fila interna cheia", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewLinxClient(server.URL, "/api/vendas", 2*time.Second)

	err := c.Send(context.Background(), json.RawMessage(`{}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestLinxClient_TimeoutIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewLinxClient(server.URL, "/api/vendas", 20*time.Millisecond)

	// Timeout é falha de entrega como outra qualquer
	err := c.Send(context.Background(), json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestLinxClient_UnreachableHostIsFailure(t *testing.T) {
	c := NewLinxClient("http://127.0.0.1:1", "/api/vendas", 500*time.Millisecond)

	err := c.Send(context.Background(), json.RawMessage(`{}`))
	assert.Error(t, err)
}
