package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edakaya/heritage-api/internal/models"
)

// Мок хранилища, собирающий переданные объекты
type siteCreatorMock struct {
	created []models.CulturalSite
	failOn  string // name_tr, на котором нужно вернуть ошибку
}

func (m *siteCreatorMock) CreateSite(_ context.Context, site models.CulturalSite) (string, error) {
	if m.failOn != "" && site.NameTR == m.failOn {
		return "", errors.New("insert failed")
	}
	m.created = append(m.created, site)
	return site.ID, nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRun(t *testing.T) {
	csvData := strings.Join([]string{
		"name_tr,name_en,category,city,district,is_unesco,ticket_required,last_update,lon,lat",
		"Ayasofya,Hagia Sophia,Museum,Istanbul,Fatih,true,1,2023-05-17,28.9784,41.0086",
		"Topkapi Sarayi,,Palace,Istanbul,Fatih,yes,0,17.05.2023,28.9834,41.0115",
		"Kayip Koordinat,,Museum,Ankara,,false,0,,,",
	}, "\n")

	mock := &siteCreatorMock{}
	stats, err := Run(context.Background(), newNoopLogger(), mock, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Errors)
	require.Len(t, mock.created, 2)

	first := mock.created[0]
	assert.Equal(t, "Ayasofya", first.NameTR)
	require.NotNil(t, first.NameEN)
	assert.Equal(t, "Hagia Sophia", *first.NameEN)
	assert.True(t, first.IsUnesco)
	assert.True(t, first.TicketRequired)
	assert.InDelta(t, 28.9784, first.Lon, 1e-9)
	assert.InDelta(t, 41.0086, first.Lat, 1e-9)
	require.NotNil(t, first.LastUpdate)
	assert.Equal(t, "2023-05-17", first.LastUpdate.Format(time.DateOnly))
	require.NotNil(t, first.ExternalCode)
	assert.True(t, strings.HasPrefix(*first.ExternalCode, "TR-Istanbul-"))
	assert.NotEmpty(t, first.ID)

	second := mock.created[1]
	assert.Nil(t, second.NameEN)
	assert.True(t, second.IsUnesco)
	assert.False(t, second.TicketRequired)
	require.NotNil(t, second.LastUpdate)
	assert.Equal(t, "2023-05-17", second.LastUpdate.Format(time.DateOnly))

	// Идентификаторы у каждой строки свои
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, *first.ExternalCode, *second.ExternalCode)
}

func TestRun_MissingRequiredColumn(t *testing.T) {
	csvData := "name_tr,category,lon\nAyasofya,Museum,28.9784\n"

	mock := &siteCreatorMock{}
	_, err := Run(context.Background(), newNoopLogger(), mock, strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
}

func TestRun_InsertErrorDoesNotStopImport(t *testing.T) {
	csvData := strings.Join([]string{
		"name_tr,category,lon,lat",
		"Ayasofya,Museum,28.9784,41.0086",
		"Topkapi Sarayi,Palace,28.9834,41.0115",
	}, "\n")

	mock := &siteCreatorMock{failOn: "Ayasofya"}
	stats, err := Run(context.Background(), newNoopLogger(), mock, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 0, stats.Skipped)
}

func TestParseRow_Defaults(t *testing.T) {
	cols := map[string]int{"name_tr": 0, "category": 1, "lon": 2, "lat": 3}

	site, ok := parseRow(cols, []string{"", "", "28.9784", "41.0086"})
	require.True(t, ok)
	assert.Equal(t, "Bilinmiyor", site.NameTR)
	assert.Equal(t, "Genel", site.Category)
	require.NotNil(t, site.ExternalCode)
	assert.True(t, strings.HasPrefix(*site.ExternalCode, "TR-TR-"))
	require.NotNil(t, site.LastUpdate)
}

func TestNormStr(t *testing.T) {
	assert.Nil(t, normStr("", 0))
	assert.Nil(t, normStr("   ", 0))
	assert.Nil(t, normStr("nan", 0))
	assert.Nil(t, normStr("NaN", 0))

	got := normStr("  Istanbul  ", 64)
	require.NotNil(t, got)
	assert.Equal(t, "Istanbul", *got)

	truncated := normStr("abcdef", 3)
	require.NotNil(t, truncated)
	assert.Equal(t, "abc", *truncated)
}

func TestNormStr_TurkishDiacritics(t *testing.T) {
	// 33 руны занимают 65 байт; байтовый лимит порезал бы руну пополам
	mixed := "a" + strings.Repeat("ç", 32)

	kept := normStr(mixed, 64)
	require.NotNil(t, kept)
	assert.Equal(t, mixed, *kept)
	assert.True(t, utf8.ValidString(*kept))

	cut := normStr(mixed, 16)
	require.NotNil(t, cut)
	assert.Equal(t, "a"+strings.Repeat("ç", 15), *cut)
	assert.True(t, utf8.ValidString(*cut))

	district := normStr("Beşiktaş Çarşı İskele Üsküdar sınırı boyunca uzanan tarihi bölge", 32)
	require.NotNil(t, district)
	assert.Equal(t, 32, len([]rune(*district)))
	assert.True(t, utf8.ValidString(*district))
}

func TestToDate_Formats(t *testing.T) {
	for _, raw := range []string{"2023-05-17", "17.05.2023", "17/05/2023", "2023/05/17", "17-05-2023"} {
		got := toDate(raw)
		require.NotNil(t, got, raw)
		assert.Equal(t, "2023-05-17", got.Format(time.DateOnly), raw)
	}
	assert.Nil(t, toDate("not a date"))
	assert.Nil(t, toDate(""))
}
