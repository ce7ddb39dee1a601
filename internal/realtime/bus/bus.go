package bus

import (
	"context"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

// Bus fans SSE messages out to every API instance. Each instance runs one
// forwarder that feeds its local hub.
type Bus interface {
	Publish(ctx context.Context, msg realtime.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error
	// Ping reports whether the transport is usable; /healthcheck calls it.
	Ping(ctx context.Context) error
	Close() error
}
