package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

// LocalBus delivers in-process only. It serves single-instance deployments
// without redis and tests.
type LocalBus struct {
	mu        sync.RWMutex
	listeners []func(m realtime.SSEMessage)
	closed    bool
}

func NewLocalBus() *LocalBus { return &LocalBus{} }

func (b *LocalBus) Publish(ctx context.Context, msg realtime.SSEMessage) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("local SSE bus closed")
	}
	for _, fn := range b.listeners {
		fn(msg)
	}
	return nil
}

func (b *LocalBus) StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("local SSE bus closed")
	}
	b.listeners = append(b.listeners, onMsg)
	return nil
}

func (b *LocalBus) Ping(ctx context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("local SSE bus closed")
	}
	return nil
}

func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.listeners = nil
	return nil
}
