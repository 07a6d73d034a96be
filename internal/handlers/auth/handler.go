package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sufra/infras/otel"
	"sufra/internal/domains/auth/model/dto"
	"sufra/internal/domains/auth/service"
	"sufra/shared/constant"
	"sufra/shared/validator"
	"sufra/transport/http/response"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/admin", handler.AdminLogin)
	})
}

// AdminLogin exchanges the shared admin secret for a bearer token.
// @Summary Log in as admin
// @Description Exchange the shared admin secret for a short-lived bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} dto.AdminTokenResponse "Admin token"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/admin [post]
func (handler *Handler) AdminLogin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminLogin")
	defer scope.End()

	req := dto.AdminLoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	token, err := handler.service.AdminLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("admin login rejected")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin token issued")

	response.WithJSON(writer, http.StatusOK, token)
}
