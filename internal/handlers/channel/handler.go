package channel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/jwt"
	"innkeep/infras/otel"
	"innkeep/infras/ws"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/transport/http/response"
)

const queryParamToken = "token"

type Handler struct {
	hub        *ws.Hub
	jwtService jwt.JWT
	otel       otel.Otel
}

func New(hub *ws.Hub, jwtService jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		hub:        hub,
		jwtService: jwtService,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Connect)
}

// Connect authenticates the handshake and subscribes the connection to the
// user's notification room. Browsers cannot set headers on websocket
// handshakes, so the access token travels as a query parameter.
// @Summary Open a notification channel
// @Description Upgrade to a WebSocket subscribed to the authenticated user's notifications.
// @Tags Channel
// @Param token query string true "Access token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} response.Error
// @Router /ws [get]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelChannelScopeName, constant.OtelChannelScopeName+".Connect")
	defer scope.End()

	token := r.URL.Query().Get(queryParamToken)
	if token == constant.Empty {
		err := failure.Unauthorized("missing token")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	claims, err := handler.jwtService.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected channel handshake")

		response.WithError(w, failure.Unauthorized("invalid token"))

		return
	}

	if claims.UserID == constant.Empty {
		err := failure.Unauthorized("invalid token claims")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("channel.room", claims.UserID)
	scope.AddEvent("Channel connection accepted for user " + claims.UserID)

	ws.ServeWS(handler.hub, w, r, claims.UserID)
}
