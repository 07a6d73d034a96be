package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sufra/infras/otel"
	"sufra/internal/domains/calendar/service"
	"sufra/shared/constant"
	"sufra/transport/http/response"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/calendar", handler.GetCalendar)
}

// GetCalendar returns the full day list with slot bindings.
// @Summary Get the calendar
// @Description Retrieve every day in the range with its slots and current bookings.
// @Tags Calendar
// @Produce json
// @Success 200 {object} dto.CalendarResponse "Calendar with slot bindings"
// @Failure 500 {object} response.Error
// @Router /v1/calendar [get]
func (handler *Handler) GetCalendar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	calendar, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Calendar retrieved successfully")

	response.WithJSON(writer, http.StatusOK, calendar)
}
