package router

import (
	"github.com/go-chi/chi/v5"

	"nihom/internal/handlers/content"
	"nihom/internal/handlers/course"
	"nihom/internal/handlers/gallery"
	"nihom/internal/handlers/media"
	"nihom/internal/handlers/public"
	"nihom/transport/http/middleware"
)

type DomainHandlers struct {
	Content content.Handler
	Course  course.Handler
	Gallery gallery.Handler
	Public  public.Handler
	Media   media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the public read side without authentication and wraps
// everything else under /api in the basic-auth middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/", r.DomainHandlers.Public.Root)

	router.Route("/api", func(api chi.Router) {
		r.DomainHandlers.Public.Router(api)

		api.Group(func(admin chi.Router) {
			admin.Use(r.AuthMiddleware.BasicAuth)

			r.DomainHandlers.Content.Router(admin)
			r.DomainHandlers.Course.Router(admin)
			r.DomainHandlers.Gallery.Router(admin)
			r.DomainHandlers.Media.Router(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
