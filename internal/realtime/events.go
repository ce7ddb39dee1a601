package realtime

import "github.com/google/uuid"

type SSEEvent string

const (
	// SSEEventSessionEnded tells a client its session no longer exists.
	SSEEventSessionEnded SSEEvent = "SessionEnded"
	// SSEEventDirectoryChanged tells dashboards that employees or departments changed.
	SSEEventDirectoryChanged SSEEvent = "DirectoryChanged"
)

// DirectoryChannel is shared by every connected client.
const DirectoryChannel = "directory"

type SSEMessage struct {
	Channel string   `json:"channel"`
	Event   SSEEvent `json:"event"`
	// SessionID, when set, limits delivery to the clients of that one session.
	SessionID string `json:"session_id,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// UserChannel is the per-account channel every session of userID listens on.
func UserChannel(userID uuid.UUID) string {
	return "user:" + userID.String()
}
