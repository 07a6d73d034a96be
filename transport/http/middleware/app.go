package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"sufra/config"
	"sufra/infras/otel"
	"sufra/shared/cache"
	"sufra/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	SessionID(next http.Handler) http.Handler
	RateLimit() func(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID attaches the caller's session identity to the request context.
// A caller without one gets a freshly minted id echoed back in the
// response header so it can persist it for subsequent requests.
func (a *appMiddleware) SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(constant.RequestHeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderSessionID, sessionID)

		ctx := context.WithValue(r.Context(), constant.ContextKeySessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
