package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"sufra/infras/jwt"
	"sufra/infras/otel"
	"sufra/shared/constant"
	"sufra/shared/failure"
	"sufra/transport/http/response"
)

// Admin promotes requests that carry a valid admin bearer token. Every
// endpoint stays reachable without one; the token only widens ownership
// checks downstream.
type Admin interface {
	Identify(next http.Handler) http.Handler
}

type adminImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAdminMiddleware(jwtService jwt.JWT, otel otel.Otel) Admin {
	return &adminImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Identify parses an optional Authorization header. No header means an
// anonymous caller and the request continues untouched; a header that is
// present but invalid is rejected rather than silently demoted.
func (m *adminImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "admin.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err = failure.Unauthorized("invalid authorization header format")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateAdminToken(tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("rejected admin token")

			err = failure.Unauthorized("invalid or expired admin token")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyIsAdmin, true)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
