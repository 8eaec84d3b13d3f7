package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edakaya/heritage-api/internal/models"
)

// Узкий набор колонок для списков; детальные поля выбираются только
// при чтении одного объекта. Координаты всегда вычисляются из геометрии.
const siteSummaryColumns = `id, ST_X(geom), ST_Y(geom),
			      name_tr, name_en, category, sub_category,
			      city, district, main_image_url, summary_tr`

// ListSites возвращает объекты, удовлетворяющие фильтру.
// Пустой результат — не ошибка.
func (s *Storage) ListSites(ctx context.Context, filter models.SiteFilter) ([]*models.SiteSummary, error) {
	const op = "storage.ListSites"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tail, args := BuildSiteFilter(filter)
	query := fmt.Sprintf(`SELECT %s
			  FROM cultural_sites
			  %s`, siteSummaryColumns, tail)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.SiteSummary
	for rows.Next() {
		var site models.SiteSummary
		var nameEN, subCategory, city, district, mainImageURL, summaryTR sql.NullString
		if err = rows.Scan(&site.ID, &site.Lon, &site.Lat,
			&site.NameTR, &nameEN, &site.Category, &subCategory,
			&city, &district, &mainImageURL, &summaryTR,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		site.NameEN = nullToPtr(nameEN)
		site.SubCategory = nullToPtr(subCategory)
		site.City = nullToPtr(city)
		site.District = nullToPtr(district)
		site.MainImageURL = nullToPtr(mainImageURL)
		site.SummaryTR = nullToPtr(summaryTR)
		result = append(result, &site)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetSite возвращает объект по идентификатору со всеми полями.
func (s *Storage) GetSite(ctx context.Context, id string) (*models.CulturalSite, error) {
	const op = "storage.GetSite"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, ST_X(geom), ST_Y(geom), external_code,
			      name_tr, name_en, category, sub_category,
			      city, district, neighbourhood, address, region_id,
			      summary_tr, summary_en, opening_hours, ticket_required,
			      website, main_image_url, is_unesco, protection_status,
			      source_name, source_url, last_update, created_at, updated_at
			  FROM cultural_sites
			  WHERE id = $1`
	site := &models.CulturalSite{}
	row := s.DB.QueryRowContext(ctx, query, id)

	var externalCode, nameEN, subCategory, city, district, neighbourhood,
		address, regionID, summaryTR, summaryEN, openingHours, website,
		mainImageURL, protectionStatus, sourceName, sourceURL sql.NullString
	var lastUpdate sql.NullTime
	if err := row.Scan(&site.ID, &site.Lon, &site.Lat, &externalCode,
		&site.NameTR, &nameEN, &site.Category, &subCategory,
		&city, &district, &neighbourhood, &address, &regionID,
		&summaryTR, &summaryEN, &openingHours, &site.TicketRequired,
		&website, &mainImageURL, &site.IsUnesco, &protectionStatus,
		&sourceName, &sourceURL, &lastUpdate, &site.CreatedAt, &site.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	site.ExternalCode = nullToPtr(externalCode)
	site.NameEN = nullToPtr(nameEN)
	site.SubCategory = nullToPtr(subCategory)
	site.City = nullToPtr(city)
	site.District = nullToPtr(district)
	site.Neighbourhood = nullToPtr(neighbourhood)
	site.Address = nullToPtr(address)
	site.RegionID = nullToPtr(regionID)
	site.SummaryTR = nullToPtr(summaryTR)
	site.SummaryEN = nullToPtr(summaryEN)
	site.OpeningHours = nullToPtr(openingHours)
	site.Website = nullToPtr(website)
	site.MainImageURL = nullToPtr(mainImageURL)
	site.ProtectionStatus = nullToPtr(protectionStatus)
	site.SourceName = nullToPtr(sourceName)
	site.SourceURL = nullToPtr(sourceURL)
	if lastUpdate.Valid {
		site.LastUpdate = &lastUpdate.Time
	}
	return site, nil
}

// CreateSite сохраняет новый объект каталога; используется загрузчиком
// и административным путём. Геометрия собирается из координат на стороне
// базы, дубликат id или external_code возвращает ErrAlreadyExists.
func (s *Storage) CreateSite(ctx context.Context, site models.CulturalSite) (string, error) {
	const op = "storage.CreateSite"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO cultural_sites (
			      id, external_code, name_tr, name_en, category, sub_category,
			      city, district, neighbourhood, address, region_id,
			      summary_tr, summary_en, opening_hours, ticket_required,
			      website, main_image_url, is_unesco, protection_status,
			      source_name, source_url, last_update, geom)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			      $13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			      ST_SetSRID(ST_Point($23, $24), 4326))
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		site.ID, site.ExternalCode, site.NameTR, site.NameEN,
		site.Category, site.SubCategory, site.City, site.District,
		site.Neighbourhood, site.Address, site.RegionID,
		site.SummaryTR, site.SummaryEN, site.OpeningHours, site.TicketRequired,
		site.Website, site.MainImageURL, site.IsUnesco, site.ProtectionStatus,
		site.SourceName, site.SourceURL, site.LastUpdate,
		site.Lon, site.Lat).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
