//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/infras/s3"
	"innkeep/infras/ws"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	"github.com/google/wire"

	authService "innkeep/internal/domains/auth/service"
	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	contactRepository "innkeep/internal/domains/contact/repository"
	contactService "innkeep/internal/domains/contact/service"
	notificationRepository "innkeep/internal/domains/notification/repository"
	notificationService "innkeep/internal/domains/notification/service"
	paymentRepository "innkeep/internal/domains/payment/repository"
	paymentService "innkeep/internal/domains/payment/service"
	reviewRepository "innkeep/internal/domains/review/repository"
	reviewService "innkeep/internal/domains/review/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	userRepository "innkeep/internal/domains/user/repository"
	userService "innkeep/internal/domains/user/service"

	authHandler "innkeep/internal/handlers/auth"
	bookingHandler "innkeep/internal/handlers/booking"
	channelHandler "innkeep/internal/handlers/channel"
	contactHandler "innkeep/internal/handlers/contact"
	notificationHandler "innkeep/internal/handlers/notification"
	paymentHandler "innkeep/internal/handlers/payment"
	reviewHandler "innkeep/internal/handlers/review"
	roomHandler "innkeep/internal/handlers/room"
	userHandler "innkeep/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	ws.NewHub,
	wire.Bind(new(ws.Publisher), new(*ws.Hub)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	notificationDomain,
	reviewDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	notificationHandler.New,
	reviewHandler.New,
	contactHandler.New,
	channelHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
