package router

import (
	"github.com/go-chi/chi/v5"

	"innkeep/internal/handlers/auth"
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/channel"
	"innkeep/internal/handlers/contact"
	"innkeep/internal/handlers/notification"
	"innkeep/internal/handlers/payment"
	"innkeep/internal/handlers/review"
	"innkeep/internal/handlers/room"
	"innkeep/internal/handlers/user"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Booking      booking.Handler
	Payment      payment.Handler
	Notification notification.Handler
	Review       review.Handler
	Contact      contact.Handler
	Channel      channel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})

	r.DomainHandlers.Channel.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
