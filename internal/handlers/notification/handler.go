package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sufra/infras/otel"
	"sufra/internal/domains/notification/model/dto"
	"sufra/internal/domains/notification/service"
	"sufra/shared/constant"
	"sufra/shared/validator"
	"sufra/transport/http/response"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/email", handler.SendEmail)
	})
}

// SendEmail relays an email through the configured provider.
// @Summary Send an email
// @Description Relay an email to the configured recipients through the mail provider.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email Request"
// @Success 200 {object} response.Data[any] "Provider response"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/email [post]
func (handler *Handler) SendEmail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEmail")
	defer scope.End()

	req := dto.EmailRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Relay(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to relay email")

		response.WithError(writer, err)

		return
	}

	if !result.OK() {
		log.Warn().Int("status", result.StatusCode).Msg("email provider rejected the request")

		response.WithJSON(writer, http.StatusBadRequest, result)

		return
	}

	scope.AddEvent("Email relayed successfully")

	response.WithJSON(writer, http.StatusOK, result)
}
