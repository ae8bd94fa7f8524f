package course

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/course/model/dto"
	"nihom/internal/domains/course/service"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/shared/validator"
	"nihom/transport/http/response"
)

type Handler struct {
	service service.Course
	otel    otel.Otel
}

func New(service service.Course, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/courses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCourses)
		routerGroup.Get("/{id}", handler.GetCourseByID)
		routerGroup.Put("/{id}", handler.UpdateCourse)
	})
}

// GetCourses lists every course, hidden ones included, so the admin panel
// can re-activate them.
func (handler *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourses")
	defer scope.End()

	courses, err := handler.service.GetAll(ctx, false)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, courses)
}

func (handler *Handler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourseByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	course, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, course)
}

func (handler *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCourse")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	req := dto.UpdateCourseRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate course form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Course updated by " + user)
	log.Info().Str("username", user).Int64("id", id).Msg("course updated")

	response.WithMessage(w, http.StatusOK, "Course updated successfully")
}
