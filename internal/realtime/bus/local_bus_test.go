package bus

import (
	"context"
	"testing"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

func TestLocalBusForwards(t *testing.T) {
	b := NewLocalBus()
	var got []realtime.SSEMessage
	if err := b.StartForwarder(context.Background(), func(m realtime.SSEMessage) { got = append(got, m) }); err != nil {
		t.Fatalf("StartForwarder: %v", err)
	}
	if err := b.Publish(context.Background(), realtime.SSEMessage{Channel: "c", Event: realtime.SSEEventDirectoryChanged}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(got) != 1 || got[0].Channel != "c" {
		t.Fatalf("forwarded: %+v", got)
	}
	_ = b.Close()
	if err := b.Publish(context.Background(), realtime.SSEMessage{Channel: "c"}); err == nil {
		t.Fatalf("Publish after Close: expected error")
	}
}
