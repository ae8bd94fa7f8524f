package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/internal/domains/content/model/dto"
	"nihom/internal/domains/content/service"
	"nihom/shared/constant"
	"nihom/shared/validator"
	"nihom/transport/http/response"
)

// Handler exposes the four singleton content sections to the admin panel.
type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hero", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHero)
		routerGroup.Put("/", handler.UpdateHero)
	})
	router.Route("/about", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAbout)
		routerGroup.Put("/", handler.UpdateAbout)
	})
	router.Route("/mission-vision", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMissionVision)
		routerGroup.Put("/", handler.UpdateMissionVision)
	})
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContact)
		routerGroup.Put("/", handler.UpdateContact)
	})
}

func (handler *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHero")
	defer scope.End()

	hero, err := handler.service.GetHero(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hero)
}

func (handler *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHero")
	defer scope.End()

	req := dto.UpdateHeroRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate hero form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateHero(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Hero content updated by " + user)
	log.Info().Str("username", user).Msg("hero content updated")

	response.WithMessage(w, http.StatusOK, "Hero content updated successfully")
}

func (handler *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAbout")
	defer scope.End()

	about, err := handler.service.GetAbout(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, about)
}

func (handler *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAbout")
	defer scope.End()

	req := dto.UpdateAboutRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate about form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateAbout(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("About content updated by " + user)
	log.Info().Str("username", user).Msg("about content updated")

	response.WithMessage(w, http.StatusOK, "About content updated successfully")
}

func (handler *Handler) GetMissionVision(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMissionVision")
	defer scope.End()

	missionVision, err := handler.service.GetMissionVision(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, missionVision)
}

func (handler *Handler) UpdateMissionVision(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMissionVision")
	defer scope.End()

	req := dto.UpdateMissionVisionRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate mission/vision form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMissionVision(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Mission/Vision updated by " + user)
	log.Info().Str("username", user).Msg("mission/vision updated")

	response.WithMessage(w, http.StatusOK, "Mission/Vision updated successfully")
}

func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContact")
	defer scope.End()

	contact, err := handler.service.GetContact(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contact)
}

func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	req := dto.UpdateContactRequest{}
	if err := validator.ValidateForm(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateContact(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Contact info updated by " + user)
	log.Info().Str("username", user).Msg("contact info updated")

	response.WithMessage(w, http.StatusOK, "Contact info updated successfully")
}
