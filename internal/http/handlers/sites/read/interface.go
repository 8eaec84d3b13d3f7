package read

import (
	"context"

	"github.com/edakaya/heritage-api/internal/geojson"
)

type Service interface {
	Get(ctx context.Context, id string) (geojson.Feature, error)
}
