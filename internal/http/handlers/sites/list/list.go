package list

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/edakaya/heritage-api/internal/http/response"
	"github.com/edakaya/heritage-api/internal/lib/sl"
	"github.com/edakaya/heritage-api/internal/models"
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
// @Summary Список культурных объектов в формате GeoJSON
// @Tags sites
// @Produce json
// @Param search   query string  false "Подстрока в name_tr или name_en"
// @Param min_lon  query number  false "Западная граница bbox"
// @Param min_lat  query number  false "Южная граница bbox"
// @Param max_lon  query number  false "Восточная граница bbox"
// @Param max_lat  query number  false "Северная граница bbox"
// @Param city     query string  false "Город (точное совпадение)"
// @Param district query string  false "Район (точное совпадение)"
// @Param category query string  false "Категория (точное совпадение)"
// @Param is_unesco query boolean false "Только объекты ЮНЕСКО"
// @Param limit    query integer false "Максимальный размер выдачи"
// @Success 200 {object} geojson.FeatureCollection "FeatureCollection"
// @Failure 400 {object} response.Response "Некорректный параметр"
// @Router /sites [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sites.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		log.Error("failed to parse query params", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	collection, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list sites", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list sites"))
		return
	}

	log.Info("sites listed", slog.Int("count", len(collection.Features)))
	render.JSON(w, r, collection)
}

// parseFilter собирает SiteFilter из строки запроса. Пустые значения
// считаются отсутствующими, непарсящиеся числа и булевы — ошибка клиента.
func parseFilter(q url.Values) (models.SiteFilter, error) {
	var filter models.SiteFilter

	filter.Search = strParam(q, "search")
	filter.City = strParam(q, "city")
	filter.District = strParam(q, "district")
	filter.Category = strParam(q, "category")

	bounds := []struct {
		name string
		dst  **float64
	}{
		{"min_lon", &filter.MinLon},
		{"min_lat", &filter.MinLat},
		{"max_lon", &filter.MaxLon},
		{"max_lat", &filter.MaxLat},
	}
	for _, b := range bounds {
		raw := q.Get(b.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.SiteFilter{}, fmt.Errorf("invalid %s value", b.name)
		}
		*b.dst = &v
	}

	if raw := q.Get("is_unesco"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return models.SiteFilter{}, fmt.Errorf("invalid is_unesco value")
		}
		filter.IsUnesco = &v
	}

	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return models.SiteFilter{}, fmt.Errorf("invalid limit value")
		}
		filter.Limit = v
	}

	return filter, nil
}

func strParam(q url.Values, name string) *string {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
