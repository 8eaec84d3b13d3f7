// Package geojson формирует GeoJSON-представление культурных объектов.
//
// Геометрия всегда точка в EPSG:4326, координаты в порядке долгота-широта.
// Списочная и детальная выдачи — разные проекции одной сущности:
// Collection несёт узкий набор свойств, DetailFeature — полный.
package geojson

import (
	"time"

	"github.com/edakaya/heritage-api/internal/models"
)

// Geometry точечная геометрия обмена.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
}

// Feature одна сущность: геометрия плюс мешок свойств.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection набор сущностей.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewPoint создает точечную геометрию, долгота первой.
func NewPoint(lon, lat float64) Geometry {
	return Geometry{
		Type:        "Point",
		Coordinates: [2]float64{lon, lat},
	}
}

// SummaryFeature формирует Feature с узким набором свойств для списков.
func SummaryFeature(s *models.SiteSummary) Feature {
	return Feature{
		Type:     "Feature",
		Geometry: NewPoint(s.Lon, s.Lat),
		Properties: map[string]any{
			"id":             s.ID,
			"name_tr":        s.NameTR,
			"name_en":        s.NameEN,
			"category":       s.Category,
			"sub_category":   s.SubCategory,
			"city":           s.City,
			"district":       s.District,
			"main_image_url": s.MainImageURL,
			"summary_tr":     s.SummaryTR,
		},
	}
}

// DetailFeature формирует Feature с полным набором свойств.
// Дата последнего обновления приводится к строке ISO-8601,
// «сырые» даты в транспорт не попадают.
func DetailFeature(s *models.CulturalSite) Feature {
	var lastUpdate *string
	if s.LastUpdate != nil {
		v := s.LastUpdate.Format(time.DateOnly)
		lastUpdate = &v
	}
	return Feature{
		Type:     "Feature",
		Geometry: NewPoint(s.Lon, s.Lat),
		Properties: map[string]any{
			"id":                s.ID,
			"external_code":     s.ExternalCode,
			"name_tr":           s.NameTR,
			"name_en":           s.NameEN,
			"category":          s.Category,
			"sub_category":      s.SubCategory,
			"city":              s.City,
			"district":          s.District,
			"neighbourhood":     s.Neighbourhood,
			"address":           s.Address,
			"region_id":         s.RegionID,
			"summary_tr":        s.SummaryTR,
			"summary_en":        s.SummaryEN,
			"opening_hours":     s.OpeningHours,
			"ticket_required":   s.TicketRequired,
			"website":           s.Website,
			"main_image_url":    s.MainImageURL,
			"is_unesco":         s.IsUnesco,
			"protection_status": s.ProtectionStatus,
			"source_name":       s.SourceName,
			"source_url":        s.SourceURL,
			"last_update":       lastUpdate,
			"latitude":          s.Lat,
			"longitude":         s.Lon,
		},
	}
}

// Collection оборачивает список узких проекций в FeatureCollection.
// Пустой список даёт пустой, но корректный FeatureCollection.
func Collection(sites []*models.SiteSummary) FeatureCollection {
	features := make([]Feature, 0, len(sites))
	for _, s := range sites {
		features = append(features, SummaryFeature(s))
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
