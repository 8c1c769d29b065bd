package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func getHealth(t *testing.T, srv *HTTPServer) (int, HealthStatus) {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	return rec.Code, status
}

func TestHealth_Healthy(t *testing.T) {
	stats := NewStats()
	stats.RecordCommand(time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC))
	stats.RecordCommand(time.Date(2024, 6, 4, 12, 5, 0, 0, time.UTC))
	srv := NewHTTPServer(":0", stats, pingFunc(func(context.Context) error { return nil }), func() bool { return true })

	code, status := getHealth(t, srv)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, HealthStatusHealthy, status.Status)
	assert.Equal(t, int64(2), status.CommandsReceived)
	require.NotNil(t, status.LastCommandTime)
	assert.Equal(t, 5, status.LastCommandTime.Minute())
}

func TestHealth_DegradedWhenAPIDown(t *testing.T) {
	srv := NewHTTPServer(":0", NewStats(), pingFunc(func(context.Context) error { return errors.New("refused") }), func() bool { return true })

	code, status := getHealth(t, srv)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, HealthStatusDegraded, status.Status)
	assert.False(t, status.APIReachable)
	assert.Nil(t, status.LastCommandTime)
}

func TestHealth_DegradedWhenDisconnected(t *testing.T) {
	srv := NewHTTPServer(":0", NewStats(), pingFunc(func(context.Context) error { return nil }), func() bool { return false })

	code, status := getHealth(t, srv)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, status.APIReachable)
	assert.False(t, status.Connected)
}

func TestHealth_Metrics(t *testing.T) {
	srv := NewHTTPServer(":0", NewStats(), nil, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
