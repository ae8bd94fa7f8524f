package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nihom/config"
	"nihom/infras/otel"
	"nihom/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	RequestID(http.Handler) http.Handler
	Logging(http.Handler) http.Handler
	SecurityHeaders(http.Handler) http.Handler
	CORS(http.Handler) http.Handler
	Tracing(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// RequestID tags every request with a fresh id, echoed in the response
// header and attached to the context for the request log.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := uuid.NewString()

		ctx := context.WithValue(request.Context(), constant.ContextKeyRequestID, requestID)
		writer.Header().Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (a *appMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		requestID, _ := request.Context().Value(constant.ContextKeyRequestID).(string)

		log.Info().
			Str("request_id", requestID).
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Str("user_agent", request.Header.Get(constant.RequestHeaderUserAgent)).
			Msg("request")
	})
}

func (a *appMiddleware) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(constant.ResponseHeaderContentOptions, "nosniff")
		writer.Header().Set(constant.ResponseHeaderFrameOptions, "DENY")

		next.ServeHTTP(writer, request)
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})(next)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttribute("app.name", a.config.App.Name)
		scope.SetAttribute("http.method", request.Method)
		scope.SetAttribute("http.path", request.URL.Path)

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
		next.ServeHTTP(recorder, request.WithContext(ctx))

		scope.SetAttribute("http.status_code", int64(recorder.status))
	})
}
