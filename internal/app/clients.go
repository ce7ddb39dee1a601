package app

import (
	"fmt"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime/bus"
)

type Clients struct {
	SSEBus bus.Bus
}

// wireClients picks the redis bus when REDIS_ADDR is set so several API
// instances share session events; a single instance runs on the local bus.
func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	if cfg.Redis.Addr == "" {
		log.Info("REDIS_ADDR not set; session events stay in-process")
		return Clients{SSEBus: bus.NewLocalBus()}, nil
	}
	b, err := bus.NewRedisBus(log, cfg.Redis)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis SSE bus: %w", err)
	}
	return Clients{SSEBus: b}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.SSEBus != nil {
		_ = c.SSEBus.Close()
	}
}
