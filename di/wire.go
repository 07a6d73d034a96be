//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"sufra/config"
	"sufra/infras/jwt"
	"sufra/infras/kafka"
	"sufra/infras/otel"
	"sufra/infras/postgres"
	"sufra/infras/redis"
	"sufra/infras/resend"
	"sufra/shared/cache"
	"sufra/transport/http"
	"sufra/transport/http/middleware"
	"sufra/transport/http/router"

	authService "sufra/internal/domains/auth/service"
	bookingRepository "sufra/internal/domains/booking/repository"
	bookingService "sufra/internal/domains/booking/service"
	calendarService "sufra/internal/domains/calendar/service"
	notificationService "sufra/internal/domains/notification/service"

	authHandler "sufra/internal/handlers/auth"
	bookingHandler "sufra/internal/handlers/booking"
	calendarHandler "sufra/internal/handlers/calendar"
	notificationHandler "sufra/internal/handlers/notification"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	resend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var calendarDomain = wire.NewSet(
	calendarService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	calendarDomain,
	notificationDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	calendarHandler.New,
	notificationHandler.New,
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
