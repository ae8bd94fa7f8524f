package media

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nihom/infras/otel"
	"nihom/infras/storage"
	"nihom/shared/constant"
	"nihom/shared/failure"
	"nihom/transport/http/response"
)

// Handler accepts file uploads for the admin panel and hands back the URL
// the content records should reference.
type Handler struct {
	store storage.Store
	otel  otel.Otel
}

func New(store storage.Store, otel otel.Otel) Handler {
	return Handler{
		store: store,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/upload", handler.Upload)
}

type uploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

func (handler *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upload")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	url, err := handler.store.Save(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to store uploaded file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("File uploaded by " + user)
	log.Info().Str("username", user).Str("url", url).Msg("file uploaded")

	response.WithJSON(w, http.StatusOK, uploadResponse{
		Filename: path.Base(url),
		URL:      url,
	})
}
