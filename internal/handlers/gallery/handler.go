package gallery

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/gallery/model/dto"
	"nihom/internal/domains/gallery/service"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/shared/validator"
	"nihom/transport/http/response"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetImages)
		routerGroup.Post("/", handler.CreateImage)
		routerGroup.Get("/{id}", handler.GetImageByID)
		routerGroup.Put("/{id}", handler.UpdateImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	images, err := handler.service.GetAll(ctx, false)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

func (handler *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateImage")
	defer scope.End()

	req := dto.CreateGalleryImageRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate gallery form")

		response.WithError(w, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Gallery image created by " + user)
	log.Info().Str("username", user).Int64("id", created.ID).Msg("gallery image created")

	response.WithJSON(w, http.StatusCreated, dto.CreatedResponse{
		Message: "Image added successfully",
		ID:      created.ID,
	})
}

func (handler *Handler) GetImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, image)
}

func (handler *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateImage")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	req := dto.UpdateGalleryImageRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate gallery form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Gallery image updated by " + user)
	log.Info().Str("username", user).Int64("id", id).Msg("gallery image updated")

	response.WithMessage(w, http.StatusOK, "Image updated successfully")
}

func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(failure.InvalidIDParam)

		response.WithError(w, failure.InvalidIDParam)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Gallery image deleted by " + user)
	log.Info().Str("username", user).Int64("id", id).Msg("gallery image deleted")

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}
