package ws

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/shared/constant"
)

const (
	EventNewNotification = "newNotification"
)

// Event is the envelope written to subscribed connections.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Publisher pushes an event to every connection subscribed to a room.
// Rooms are keyed by user ID, taken from the token at handshake time.
type Publisher interface {
	Publish(ctx context.Context, room, event string, data any)
}

type publication struct {
	room    string
	payload []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	publish    chan publication
	otel       otel.Otel
}

func NewHub(otl otel.Otel) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		publish:    make(chan publication),
		otel:       otl,
	}
}

// Run owns the room registry. All membership changes and fan-out go through
// this loop, so no locking is needed elsewhere.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for room, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}

				delete(h.rooms, room)
			}

			return
		case client := <-h.register:
			clients, ok := h.rooms[client.room]
			if !ok {
				clients = make(map[*Client]bool)
				h.rooms[client.room] = clients
			}

			clients[client] = true

			log.Info().Str("room", client.room).Int("members", len(clients)).Msg("Client joined room")
		case client := <-h.unregister:
			clients, ok := h.rooms[client.room]
			if !ok {
				continue
			}

			if _, ok := clients[client]; ok {
				delete(clients, client)
				close(client.send)
			}

			if len(clients) == 0 {
				delete(h.rooms, client.room)
			}

			log.Info().Str("room", client.room).Msg("Client left room")
		case pub := <-h.publish:
			for client := range h.rooms[pub.room] {
				select {
				case client.send <- pub.payload:
				default:
					// Slow consumer, drop it rather than block the hub.
					delete(h.rooms[pub.room], client)
					close(client.send)
				}
			}
		}
	}
}

// Publish sends an event to a room. Publishing to a room with no members is
// a no-op.
func (h *Hub) Publish(ctx context.Context, room, event string, data any) {
	_, scope := h.otel.NewScope(ctx, constant.OtelChannelScopeName, constant.OtelChannelScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"room":  room,
		"event": event,
	})

	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.Error().Err(err).Str("room", room).Str("event", event).Msg("Failed to marshal channel event")
		scope.TraceError(err)

		return
	}

	h.publish <- publication{room: room, payload: payload}
}
