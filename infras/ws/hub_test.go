package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeep/infras/otel/mocks"
)

func receive(t *testing.T, client *Client) []byte {
	t.Helper()

	select {
	case payload := <-client.send:
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}

func TestHubPublishFansOutToRoomMembers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(mocks.NewOtel())
	go hub.Run(ctx)

	first := newClient(hub, nil, "user-1", 4)
	second := newClient(hub, nil, "user-1", 4)
	other := newClient(hub, nil, "user-2", 4)

	hub.register <- first
	hub.register <- second
	hub.register <- other

	hub.Publish(ctx, "user-1", EventNewNotification, map[string]string{"message": "hello"})

	for _, client := range []*Client{first, second} {
		var event Event

		require.NoError(t, json.Unmarshal(receive(t, client), &event))
		assert.Equal(t, EventNewNotification, event.Event)
	}

	select {
	case <-other.send:
		t.Fatal("client in another room received the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPublishEmptyRoomIsNoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(mocks.NewOtel())
	go hub.Run(ctx)

	done := make(chan struct{})

	go func() {
		hub.Publish(ctx, "nobody-home", EventNewNotification, map[string]string{"message": "hello"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish to empty room blocked")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(mocks.NewOtel())
	go hub.Run(ctx)

	client := newClient(hub, nil, "user-1", 4)
	hub.register <- client
	hub.unregister <- client

	select {
	case _, open := <-client.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubDropsSlowConsumer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(mocks.NewOtel())
	go hub.Run(ctx)

	slow := newClient(hub, nil, "user-1", 1)
	hub.register <- slow

	hub.Publish(ctx, "user-1", EventNewNotification, map[string]string{"message": "first"})
	hub.Publish(ctx, "user-1", EventNewNotification, map[string]string{"message": "second"})

	// The buffer holds the first event, the second overflows and evicts the
	// client, closing its channel after the buffered event is drained.
	<-slow.send

	select {
	case _, open := <-slow.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("slow consumer was not dropped")
	}
}
