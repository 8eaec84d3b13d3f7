package read

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/edakaya/heritage-api/internal/http/response"
	"github.com/edakaya/heritage-api/internal/lib/sl"
	sitesservice "github.com/edakaya/heritage-api/internal/services/sites"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP
// @Summary Культурный объект по идентификатору в формате GeoJSON
// @Tags sites
// @Produce json
// @Param id path string true "Идентификатор объекта (UUID)"
// @Success 200 {object} geojson.Feature "Feature с полным набором свойств"
// @Failure 404 {object} response.Response "Объект не найден"
// @Router /sites/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sites.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	feature, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sitesservice.ErrSiteNotFound) {
			log.Info("site not found", slog.String("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("site not found"))
			return
		}
		log.Error("failed to get site", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get site"))
		return
	}

	render.JSON(w, r, feature)
}
