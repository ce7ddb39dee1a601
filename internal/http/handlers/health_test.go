package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime/bus"
)

func serveHealth(checks map[string]Pinger) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthcheck", NewHealthHandler(checks).HealthCheck)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	return w
}

func TestHealthCheckReportsBus(t *testing.T) {
	b := bus.NewLocalBus()

	w := serveHealth(map[string]Pinger{"bus": b.Ping})
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("open bus: got %d %q", w.Code, w.Body.String())
	}

	_ = b.Close()
	w = serveHealth(map[string]Pinger{"bus": b.Ping})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("closed bus: got %d want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"bus"`) {
		t.Fatalf("failed check not named: %s", w.Body.String())
	}
}
