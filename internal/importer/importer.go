// Package importer загружает каталог культурных объектов из CSV-файла.
//
// Идентификаторы из файла игнорируются: для каждой строки выпускается новый
// UUID и внешний код вида TR-<Город>-<первые 8 знаков UUID>, поэтому импорт
// никогда не падает на конфликте кодов. Строки без координат пропускаются.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edakaya/heritage-api/internal/lib/sl"
	"github.com/edakaya/heritage-api/internal/models"
)

// SiteCreator описывает запись объекта в хранилище.
type SiteCreator interface {
	CreateSite(ctx context.Context, site models.CulturalSite) (string, error)
}

// Stats итог прогона импорта.
type Stats struct {
	Created int // добавлено записей
	Skipped int // пропущено строк без координат
	Errors  int // строк с ошибкой записи
}

// Run читает CSV из r и записывает каждую пригодную строку через creator.
// Ошибка одной строки не останавливает импорт, она попадает в Stats.Errors.
func Run(ctx context.Context, log *slog.Logger, creator SiteCreator, r io.Reader) (Stats, error) {
	const op = "importer.Run"

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name_tr", "category", "lon", "lat"} {
		if _, ok := cols[required]; !ok {
			return Stats{}, fmt.Errorf("%s: missing required column %q", op, required)
		}
	}

	var stats Stats
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Error("failed to read csv row", slog.Int("line", line), sl.Err(err))
			stats.Errors++
			continue
		}

		site, ok := parseRow(cols, record)
		if !ok {
			stats.Skipped++
			continue
		}

		if _, err := creator.CreateSite(ctx, site); err != nil {
			log.Error("failed to insert site",
				slog.Int("line", line),
				slog.String("name_tr", site.NameTR),
				sl.Err(err))
			stats.Errors++
			continue
		}
		stats.Created++
	}

	return stats, nil
}

// parseRow переводит строку CSV в модель. Возвращает false, если у строки
// нет валидных координат и она должна быть пропущена.
func parseRow(cols map[string]int, record []string) (models.CulturalSite, bool) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	lon := toFloat(field("lon"))
	lat := toFloat(field("lat"))
	if lon == nil || lat == nil {
		return models.CulturalSite{}, false
	}

	newID := uuid.New().String()
	city := normStr(field("city"), 64)

	citySlug := "TR"
	if city != nil {
		citySlug = strings.ReplaceAll(*city, " ", "")
	}
	externalCode := fmt.Sprintf("TR-%s-%s", citySlug, newID[:8])

	nameTR := normStr(field("name_tr"), 255)
	if nameTR == nil {
		v := "Bilinmiyor"
		nameTR = &v
	}
	category := normStr(field("category"), 64)
	if category == nil {
		v := "Genel"
		category = &v
	}

	lastUpdate := toDate(field("last_update"))
	if lastUpdate == nil {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		lastUpdate = &now
	}

	return models.CulturalSite{
		ID:               newID,
		ExternalCode:     &externalCode,
		NameTR:           *nameTR,
		NameEN:           normStr(field("name_en"), 255),
		Category:         *category,
		SubCategory:      normStr(field("sub_category"), 64),
		City:             city,
		District:         normStr(field("district"), 64),
		Neighbourhood:    normStr(field("neighbourhood"), 128),
		Address:          normStr(field("address"), 0),
		RegionID:         normStr(field("region_id"), 32),
		SummaryTR:        normStr(field("summary_tr"), 0),
		SummaryEN:        normStr(field("summary_en"), 0),
		OpeningHours:     normStr(field("opening_hours"), 64),
		TicketRequired:   toBool(field("ticket_required")),
		Website:          normStr(field("website"), 0),
		MainImageURL:     normStr(field("main_image_url"), 0),
		IsUnesco:         toBool(field("is_unesco")),
		ProtectionStatus: normStr(field("protection_status"), 64),
		SourceName:       normStr(field("source_name"), 128),
		SourceURL:        normStr(field("source_url"), 0),
		LastUpdate:       lastUpdate,
		Lon:              *lon,
		Lat:              *lat,
	}, true
}

// normStr очищает значение: пустые строки и "nan" превращаются в nil,
// maxlen > 0 обрезает хвост. Лимит считается в рунах, а не байтах:
// колонки схемы типа VARCHAR(n) меряют символы, и резать турецкий
// текст посреди многобайтовой руны нельзя.
func normStr(v string, maxlen int) *string {
	s := strings.TrimSpace(v)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	if maxlen > 0 {
		if runes := []rune(s); len(runes) > maxlen {
			s = string(runes[:maxlen])
		}
	}
	return &s
}

func toBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y":
		return true
	default:
		return false
	}
}

func toFloat(v string) *float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// toDate пробует распространённые форматы дат из выгрузок источников.
func toDate(v string) *time.Time {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	formats := []string{"2006-01-02", "02.01.2006", "02/01/2006", "2006/01/02", "02-01-2006"}
	for _, layout := range formats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.Truncate(24 * time.Hour)
		return &t
	}
	return nil
}
