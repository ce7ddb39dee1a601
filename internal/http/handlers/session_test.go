package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionStreamEndsOnSessionEnded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	hub := realtime.NewSSEHub(log)
	h := NewSessionHandler(log, hub, observability.NewMetrics(nil))

	userID, sessionID := uuid.New(), uuid.New()
	r := gin.New()
	r.GET("/api/session/stream", func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID, SessionID: sessionID})
		c.Request = c.Request.WithContext(ctx)
		h.Stream(c)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/session/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	waitFor(t, func() bool { return hub.Subscribers(realtime.UserChannel(userID)) == 1 })
	if hub.Subscribers(realtime.DirectoryChannel) != 1 {
		t.Fatalf("stream not subscribed to the directory channel")
	}

	hub.Broadcast(realtime.SSEMessage{
		Channel:   realtime.UserChannel(userID),
		Event:     realtime.SSEEventSessionEnded,
		SessionID: sessionID.String(),
	})

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatalf("stream did not end after SessionEnded")
	}
	if !strings.Contains(rec.Body.String(), `"event":"SessionEnded"`) {
		t.Fatalf("SessionEnded not delivered: %q", rec.Body.String())
	}
	if n := hub.Subscribers(realtime.UserChannel(userID)); n != 0 {
		t.Fatalf("client still subscribed after stream ended: %d", n)
	}
}

func TestSessionStreamRequiresRequestData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	h := NewSessionHandler(log, realtime.NewSSEHub(log), nil)
	r := gin.New()
	r.GET("/api/session/stream", h.Stream)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session/stream", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
}
