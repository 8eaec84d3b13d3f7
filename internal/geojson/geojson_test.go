package geojson

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakaya/heritage-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestNewPoint_LonFirst(t *testing.T) {
	g := NewPoint(28.9784, 41.0082)

	assert.Equal(t, "Point", g.Type)
	assert.Equal(t, [2]float64{28.9784, 41.0082}, g.Coordinates)
}

func TestSummaryFeature_NarrowPropertySet(t *testing.T) {
	s := &models.SiteSummary{
		ID:       "d290f1ee-6c54-4b01-90e6-d701748f0851",
		NameTR:   "Ayasofya",
		NameEN:   strPtr("Hagia Sophia"),
		Category: "museum",
		City:     strPtr("Istanbul"),
		District: strPtr("Fatih"),
		Lon:      28.9784,
		Lat:      41.0086,
	}

	f := SummaryFeature(s)

	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, [2]float64{28.9784, 41.0086}, f.Geometry.Coordinates)
	assert.Equal(t, s.ID, f.Properties["id"])
	assert.Equal(t, "Ayasofya", f.Properties["name_tr"])

	// детальные поля в списочную проекцию не попадают
	assert.NotContains(t, f.Properties, "address")
	assert.NotContains(t, f.Properties, "opening_hours")
	assert.NotContains(t, f.Properties, "source_name")
}

func TestDetailFeature_FullPropertySet(t *testing.T) {
	lastUpdate := time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC)
	s := &models.CulturalSite{
		ID:             "d290f1ee-6c54-4b01-90e6-d701748f0851",
		NameTR:         "Ayasofya",
		Category:       "museum",
		Address:        strPtr("Sultan Ahmet, Ayasofya Meydanı No:1"),
		OpeningHours:   strPtr("09:00-19:00"),
		TicketRequired: true,
		IsUnesco:       true,
		LastUpdate:     &lastUpdate,
		Lon:            28.9784,
		Lat:            41.0086,
	}

	f := DetailFeature(s)

	assert.Equal(t, s.Address, f.Properties["address"])
	assert.Equal(t, s.OpeningHours, f.Properties["opening_hours"])
	assert.Equal(t, true, f.Properties["is_unesco"])

	// дата сериализуется детерминированной строкой
	lu, ok := f.Properties["last_update"].(*string)
	require.True(t, ok)
	require.NotNil(t, lu)
	assert.Equal(t, "2023-05-17", *lu)

	// производные координаты совпадают с геометрией
	assert.Equal(t, 41.0086, f.Properties["latitude"])
	assert.Equal(t, 28.9784, f.Properties["longitude"])
}

func TestDetailFeature_NilDate(t *testing.T) {
	s := &models.CulturalSite{ID: "x", NameTR: "n", Category: "c"}

	f := DetailFeature(s)

	lu, ok := f.Properties["last_update"].(*string)
	require.True(t, ok)
	assert.Nil(t, lu)
}

func TestCollection_EmptyIsValid(t *testing.T) {
	fc := Collection(nil)

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.NotNil(t, fc.Features)
	assert.Len(t, fc.Features, 0)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
}

func TestCollection_WrapsEverySite(t *testing.T) {
	sites := []*models.SiteSummary{
		{ID: "a", NameTR: "Topkapı Sarayı", Category: "palace", Lon: 28.985, Lat: 41.011},
		{ID: "b", NameTR: "Galata Kulesi", Category: "tower", Lon: 28.974, Lat: 41.025},
	}

	fc := Collection(sites)

	require.Len(t, fc.Features, 2)
	assert.Equal(t, "a", fc.Features[0].Properties["id"])
	assert.Equal(t, [2]float64{28.974, 41.025}, fc.Features[1].Geometry.Coordinates)
}
