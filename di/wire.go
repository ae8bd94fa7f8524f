//go:build wireinject
// +build wireinject

package di

import (
	"nihom/config"
	"nihom/infras/otel"
	"nihom/infras/sqlite"
	"nihom/infras/storage"
	"nihom/transport/http"
	"nihom/transport/http/middleware"
	"nihom/transport/http/router"

	"github.com/google/wire"

	adminRepository "nihom/internal/domains/admin/repository"
	authService "nihom/internal/domains/auth/service"
	contentRepository "nihom/internal/domains/content/repository"
	contentService "nihom/internal/domains/content/service"
	courseRepository "nihom/internal/domains/course/repository"
	courseService "nihom/internal/domains/course/service"
	galleryRepository "nihom/internal/domains/gallery/repository"
	galleryService "nihom/internal/domains/gallery/service"

	contentHandler "nihom/internal/handlers/content"
	courseHandler "nihom/internal/handlers/course"
	galleryHandler "nihom/internal/handlers/gallery"
	mediaHandler "nihom/internal/handlers/media"
	publicHandler "nihom/internal/handlers/public"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	storage.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var courseDomain = wire.NewSet(
	courseRepository.New,
	courseService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	contentDomain,
	courseDomain,
	galleryDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	contentHandler.New,
	courseHandler.New,
	galleryHandler.New,
	publicHandler.New,
	mediaHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
