package router

import (
	"github.com/go-chi/chi/v5"

	"sufra/internal/handlers/auth"
	"sufra/internal/handlers/booking"
	"sufra/internal/handlers/calendar"
	"sufra/internal/handlers/notification"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Calendar     calendar.Handler
	Booking      booking.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
