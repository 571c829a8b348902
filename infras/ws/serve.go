package ws

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/shared/constant"
)

// ServeWS upgrades the request and subscribes the connection to the given
// room. The caller is responsible for authenticating the request and deriving
// the room before calling.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request, room string) {
	conf := config.Get()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origins := conf.App.CORS.AllowedOrigins
			if !conf.App.CORS.Enable || slices.Contains(origins, constant.Asterix) {
				return true
			}

			return slices.Contains(origins, r.Header.Get("Origin"))
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")

		return
	}

	client := newClient(hub, conn, room, conf.Channel.SendBufferSize)
	hub.register <- client

	go client.writePump(conf.Channel.PingPeriodSecond)
	go client.readPump(conf.Channel.ReadLimitBytes)
}
