package list

import (
	"context"

	"github.com/edakaya/heritage-api/internal/geojson"
	"github.com/edakaya/heritage-api/internal/models"
)

type Service interface {
	List(ctx context.Context, filter models.SiteFilter) (geojson.FeatureCollection, error)
}
