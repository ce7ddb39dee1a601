package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/response"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

// SessionHandler streams session and directory events to signed-in clients.
type SessionHandler struct {
	log     *logger.Logger
	hub     *realtime.SSEHub
	metrics *observability.Metrics

	mu      sync.Mutex
	clients map[uuid.UUID]*realtime.SSEClient // key: SessionID (UserToken.ID)
}

func NewSessionHandler(log *logger.Logger, hub *realtime.SSEHub, metrics *observability.Metrics) *SessionHandler {
	return &SessionHandler{
		log:     log.With("handler", "SessionHandler"),
		hub:     hub,
		metrics: metrics,
		clients: make(map[uuid.UUID]*realtime.SSEClient),
	}
}

func (h *SessionHandler) Stream(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil || rd.SessionID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errNotAuthenticated)
		return
	}

	h.mu.Lock()
	// A session keeps a single stream; a reconnect replaces the old one.
	if existing, ok := h.clients[rd.SessionID]; ok {
		h.hub.CloseClient(existing)
	}
	client := h.hub.NewSSEClient(rd.UserID, rd.SessionID)
	h.clients[rd.SessionID] = client
	h.mu.Unlock()

	h.hub.AddChannel(client, realtime.UserChannel(rd.UserID))
	h.hub.AddChannel(client, realtime.DirectoryChannel)
	h.metrics.SSEClientOpened()
	h.log.Debug("Session stream open", "user_id", rd.UserID.String(), "session_id", rd.SessionID.String())

	h.hub.ServeHTTP(c.Writer, c.Request, client)

	h.mu.Lock()
	if h.clients[rd.SessionID] == client {
		delete(h.clients, rd.SessionID)
	}
	h.mu.Unlock()
	h.hub.CloseClient(client)
	h.metrics.SSEClientClosed()
}
