package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nihom/config"
	"nihom/infras/otel"
	contentService "nihom/internal/domains/content/service"
	courseService "nihom/internal/domains/course/service"
	galleryService "nihom/internal/domains/gallery/service"
	"nihom/shared/constant"
	"nihom/transport/http/response"
)

// Handler serves the unauthenticated read side of the site. Lists filter to
// active rows; singletons are returned as stored.
type Handler struct {
	otel otel.Otel

	contentService contentService.Content
	courseService  courseService.Course
	galleryService galleryService.Gallery
	cfg            *config.Config
}

func New(
	contentSvc contentService.Content,
	courseSvc courseService.Course,
	gallerySvc galleryService.Gallery,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		contentService: contentSvc,
		courseService:  courseSvc,
		galleryService: gallerySvc,
		cfg:            cfg,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/public", func(routerGroup chi.Router) {
		routerGroup.Get("/hero", handler.GetHero)
		routerGroup.Get("/about", handler.GetAbout)
		routerGroup.Get("/mission-vision", handler.GetMissionVision)
		routerGroup.Get("/courses", handler.GetCourses)
		routerGroup.Get("/gallery", handler.GetGallery)
		routerGroup.Get("/contact", handler.GetContact)
	})
}

type banner struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// Root answers the service banner at /, mirroring what the admin panel pings
// to check the backend is up.
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Root")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, banner{
		Service: handler.cfg.App.Name,
		Status:  "running",
	})
}

func (handler *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetHero")
	defer scope.End()

	hero, err := handler.contentService.GetHero(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hero)
}

func (handler *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetAbout")
	defer scope.End()

	about, err := handler.contentService.GetAbout(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, about)
}

func (handler *Handler) GetMissionVision(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetMissionVision")
	defer scope.End()

	missionVision, err := handler.contentService.GetMissionVision(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, missionVision)
}

func (handler *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetCourses")
	defer scope.End()

	courses, err := handler.courseService.GetAll(ctx, true)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, courses)
}

func (handler *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetGallery")
	defer scope.End()

	images, err := handler.galleryService.GetAll(ctx, true)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicGetContact")
	defer scope.End()

	contact, err := handler.contentService.GetContact(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contact)
}
