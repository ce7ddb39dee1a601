package realtime

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

func recvMessage(t *testing.T, ch <-chan SSEMessage, timeout time.Duration) SSEMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return SSEMessage{}
}

func TestSSEHubOrderingAndReconnect(t *testing.T) {
	hub := NewSSEHub(logger.Nop())
	userID := uuid.New()
	channel := UserChannel(userID)

	clientA := hub.NewSSEClient(userID, uuid.New())
	hub.AddChannel(clientA, channel)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventDirectoryChanged, Data: map[string]any{"seq": 1}})
	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventSessionEnded, Data: map[string]any{"seq": 2}})

	if got := recvMessage(t, clientA.Outbound, time.Second); got.Event != SSEEventDirectoryChanged {
		t.Fatalf("first event: want=%s got=%s", SSEEventDirectoryChanged, got.Event)
	}
	if got := recvMessage(t, clientA.Outbound, time.Second); got.Event != SSEEventSessionEnded {
		t.Fatalf("second event: want=%s got=%s", SSEEventSessionEnded, got.Event)
	}

	hub.CloseClient(clientA)
	hub.CloseClient(clientA)
	select {
	case <-clientA.Done():
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for clientA to close")
	}
	if n := hub.Subscribers(channel); n != 0 {
		t.Fatalf("subscribers after close: %d", n)
	}

	clientB := hub.NewSSEClient(userID, uuid.New())
	hub.AddChannel(clientB, channel)
	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventDirectoryChanged})
	if got := recvMessage(t, clientB.Outbound, time.Second); got.Event != SSEEventDirectoryChanged {
		t.Fatalf("reconnect event: got=%s", got.Event)
	}
}

func TestSSEHubSessionTargeting(t *testing.T) {
	hub := NewSSEHub(logger.Nop())
	userID := uuid.New()
	channel := UserChannel(userID)

	kept := hub.NewSSEClient(userID, uuid.New())
	ended := hub.NewSSEClient(userID, uuid.New())
	hub.AddChannel(kept, channel)
	hub.AddChannel(ended, channel)

	hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventSessionEnded, SessionID: ended.SessionID.String()})

	if got := recvMessage(t, ended.Outbound, time.Second); got.Event != SSEEventSessionEnded {
		t.Fatalf("targeted session: got=%s", got.Event)
	}
	select {
	case msg := <-kept.Outbound:
		t.Fatalf("other session received %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSSEHubServeHTTPEndsWithSession(t *testing.T) {
	hub := NewSSEHub(logger.Nop())
	userID := uuid.New()
	client := hub.NewSSEClient(userID, uuid.New())
	hub.AddChannel(client, UserChannel(userID))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeHTTP(w, r, client)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET stream: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type: %q", ct)
	}

	hub.Broadcast(SSEMessage{Channel: UserChannel(userID), Event: SSEEventSessionEnded})

	var body strings.Builder
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		body.WriteString(sc.Text())
		body.WriteString("\n")
	}
	if !strings.Contains(body.String(), `"event":"SessionEnded"`) {
		t.Fatalf("stream body missing SessionEnded: %q", body.String())
	}
}
