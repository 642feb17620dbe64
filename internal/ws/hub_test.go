package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHub_BroadcastReachesEveryAdmin(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(ctx)
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	first := &Client{hub: hub, adminID: 1, send: make(chan []byte, 4)}
	second := &Client{hub: hub, adminID: 2, send: make(chan []byte, 4)}
	hub.Register(first)
	hub.Register(second)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Broadcast(EventMessageCreated, map[string]any{"id": 7}))

	for _, c := range []*Client{first, second} {
		select {
		case raw := <-c.send:
			var event struct {
				Type string         `json:"type"`
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &event))
			assert.Equal(t, EventMessageCreated, event.Type)
			assert.EqualValues(t, 7, event.Data["id"])
		case <-time.After(time.Second):
			t.Fatalf("клиент %d не получил событие", c.adminID)
		}
	}

	hub.Unregister(first)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, open := <-first.send
	assert.False(t, open, "канал отключённого клиента должен быть закрыт")

	cancel()
	<-done
	_, open = <-second.send
	assert.False(t, open)
	assert.ErrorIs(t, hub.Broadcast(EventMessageCreated, nil), context.Canceled)
}
