package realtime

import (
	"sync"

	"github.com/google/uuid"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type SSEClient struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SessionID uuid.UUID
	Channels  map[string]bool
	Outbound  chan SSEMessage
	done      chan struct{}
	closeOnce sync.Once
	Logger    *logger.Logger
}

// Done is closed once the hub has dropped the client.
func (c *SSEClient) Done() <-chan struct{} { return c.done }
