package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

const (
	DefaultChannel = "workhub:sse"

	forwardBuffer = 256
)

var errBusClosed = errors.New("redis SSE bus closed")

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

func (c RedisConfig) channel() string {
	if ch := strings.TrimSpace(c.Channel); ch != "" {
		return ch
	}
	return DefaultChannel
}

// RedisBus carries session and directory events between API instances over one
// pub/sub channel.
type RedisBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewRedisBus connects and pings before returning so a bad REDIS_ADDR fails startup.
func NewRedisBus(log *logger.Logger, cfg RedisConfig) (*RedisBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	b := &RedisBus{
		log: log.With("service", "RedisSSEBus", "channel", cfg.channel()),
		rdb: goredis.NewClient(&goredis.Options{
			Addr:        addr,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: 5 * time.Second,
		}),
		channel: cfg.channel(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.Ping(ctx); err != nil {
		_ = b.rdb.Close()
		return nil, err
	}
	return b, nil
}

func (b *RedisBus) Ping(ctx context.Context) error {
	if b == nil || b.rdb == nil {
		return errBusClosed
	}
	if err := b.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (b *RedisBus) Publish(ctx context.Context, msg realtime.SSEMessage) error {
	if b == nil || b.rdb == nil {
		return errBusClosed
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode SSE message: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", msg.Event, err)
	}
	return nil
}

// StartForwarder returns once the subscription is confirmed; messages are then
// handed to onMsg from a single goroutine until ctx ends.
func (b *RedisBus) StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error {
	if b == nil || b.rdb == nil {
		return errBusClosed
	}
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	incoming := sub.Channel(goredis.WithChannelSize(forwardBuffer))
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-incoming:
				if !ok {
					b.log.Warn("Redis subscription closed")
					return
				}
				msg, err := decodeMessage(m)
				if err != nil {
					b.log.Warn("Dropping redis SSE payload", "error", err)
					continue
				}
				onMsg(msg)
			}
		}
	}()
	return nil
}

func decodeMessage(m *goredis.Message) (realtime.SSEMessage, error) {
	var msg realtime.SSEMessage
	if m == nil {
		return msg, fmt.Errorf("nil message")
	}
	if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
		return msg, err
	}
	if msg.Channel == "" {
		return msg, fmt.Errorf("message without channel")
	}
	return msg, nil
}

func (b *RedisBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
