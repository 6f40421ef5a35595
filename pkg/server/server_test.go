package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/clock"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/logging"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/widget"
)

type fakeFetcher struct {
	resp *transit.ConnectionsResponse
}

func (f fakeFetcher) FetchConnections(ctx context.Context, from, to string) (*transit.ConnectionsResponse, error) {
	return f.resp, nil
}

func newTestServer(source ConfigSource) *httptest.Server {
	now := time.Date(2026, 2, 25, 8, 0, 0, 0, time.UTC)
	w := widget.New(fakeFetcher{resp: &transit.ConnectionsResponse{
		From: transit.Station{Name: "A"},
		To:   transit.Station{Name: "B"},
		Connections: []transit.Connection{
			{From: transit.Checkpoint{Departure: transit.Timestamp{Time: now.Add(5 * time.Minute)}}},
		},
	}}, clock.Fixed(now), nil)

	return httptest.NewServer(New(w, source, logging.Discard(), io.Discard).Handler())
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRunEndpoint(t *testing.T) {
	srv := newTestServer(func() (string, error) {
		return `{"connections": [{"from_station": "A", "to_station": "B", "num_connections": 1}]}`, nil
	})
	defer srv.Close()

	resp, body := get(t, srv.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "90", resp.Header.Get("Refresh"))
	assert.Equal(t, "A -> B\nin 5 minutes (08:05)", body)
}

func TestRunEndpoint_NoConfig(t *testing.T) {
	srv := newTestServer(func() (string, error) { return "{}", nil })
	defer srv.Close()

	_, body := get(t, srv.URL+"/")
	assert.Equal(t, "No config provided", body)
}

func TestRunEndpoint_BadConfig(t *testing.T) {
	srv := newTestServer(func() (string, error) { return `{"connections": 1}`, nil })
	defer srv.Close()

	resp, _ := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRunEndpoint_SourceError(t *testing.T) {
	srv := newTestServer(func() (string, error) { return "", errors.New("disk on fire") })
	defer srv.Close()

	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "disk on fire")
}

func TestInfoEndpoint(t *testing.T) {
	srv := newTestServer(func() (string, error) { return "{}", nil })
	defer srv.Close()

	resp, body := get(t, srv.URL+"/info")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info Info
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Equal(t, Info{Name: "Public Transport", Version: "1.0.0", UpdateCycleSeconds: 90}, info)
}

func TestSchemaEndpoint(t *testing.T) {
	srv := newTestServer(func() (string, error) { return "{}", nil })
	defer srv.Close()

	resp, body := get(t, srv.URL+"/schema")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, json.Valid([]byte(body)))
	assert.Contains(t, body, "from_station")
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(func() (string, error) { return "{}", nil })
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/info", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	w := widget.New(fakeFetcher{}, nil, nil)
	s := New(w, func() (string, error) { return "{}", nil }, logging.Discard(), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after cancel")
	}
}
