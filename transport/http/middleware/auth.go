package middleware

import (
	"context"
	"net/http"

	"nihom/infras/otel"
	"nihom/internal/domains/auth/service"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/transport/http/response"
)

// Auth guards the admin routes with HTTP basic authentication.
type Auth interface {
	BasicAuth(http.Handler) http.Handler
}

type authImpl struct {
	auth service.Auth
	otel otel.Otel
}

func NewAuthMiddleware(auth service.Auth, otel otel.Otel) Auth {
	return &authImpl{
		auth: auth,
		otel: otel,
	}
}

// BasicAuth verifies the Authorization header credentials on every request.
// Nothing is cached between requests; each call re-checks against the store.
func (m *authImpl) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "basic_auth.middleware")

		username, plain, ok := request.BasicAuth()
		if !ok {
			err := failure.Unauthorized("Not authenticated")
			response.WithUnauthorized(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		identity, err := m.auth.Verify(ctx, username, plain)
		if err != nil {
			response.WithUnauthorized(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUsername, identity.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, identity.Email)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
