package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent returns the event: line of the next message on the stream
func readEvent(t *testing.T, r *bufio.Reader) (eventType, data string) {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && eventType != "":
			return eventType, data
		}
	}
}

func TestHandler_StreamsFilteredEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=market.resolved,%20cohort.published", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	typ, data := readEvent(t, r)
	require.Equal(t, EventTypeConnected, typ)
	assert.Contains(t, data, "cohort.published")

	waitForClients(t, hub, 1)
	hub.Broadcast("league.joined", map[string]string{"user_id": "telegram:1"})
	hub.Broadcast("market.resolved", map[string]string{"market_id": "KX-9"})

	typ, data = readEvent(t, r)
	assert.Equal(t, "market.resolved", typ)
	assert.Contains(t, data, "KX-9")

	cancel()
	waitForClients(t, hub, 0)
}
