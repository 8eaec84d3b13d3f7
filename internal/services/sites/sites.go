// Package services содержит бизнес-логику каталога культурных объектов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edakaya/heritage-api/internal/geojson"
	"github.com/edakaya/heritage-api/internal/models"
	"github.com/edakaya/heritage-api/internal/storage/repository"
)

// ErrSiteNotFound объект с таким идентификатором отсутствует.
// Некорректная строка идентификатора даёт тот же результат, что и
// отсутствующая запись: снаружи они неразличимы.
var ErrSiteNotFound = errors.New("site not found")

// SiteRepository определяет методы для работы с каталогом в хранилище.
type SiteRepository interface {
	// ListSites возвращает узкие проекции объектов по фильтру.
	ListSites(ctx context.Context, filter models.SiteFilter) ([]*models.SiteSummary, error)
	// GetSite возвращает объект по идентификатору со всеми полями.
	GetSite(ctx context.Context, id string) (*models.CulturalSite, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// SiteService реализует выборку каталога: список с фильтрами и
// детальное чтение с кешированием.
type SiteService struct {
	repo  SiteRepository
	cache Cache
	log   *slog.Logger
}

// NewSiteService создает новый экземпляр SiteService.
func NewSiteService(repo SiteRepository, cache Cache, log *slog.Logger) *SiteService {
	return &SiteService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает FeatureCollection по фильтру. Отсутствие результатов —
// не ошибка: возвращается пустой набор.
func (s *SiteService) List(ctx context.Context, filter models.SiteFilter) (geojson.FeatureCollection, error) {
	const op = "services.sites.List"

	sites, err := s.repo.ListSites(ctx, filter)
	if err != nil {
		return geojson.FeatureCollection{}, fmt.Errorf("%s: %w", op, err)
	}
	return geojson.Collection(sites), nil
}

// Get возвращает детальный Feature по идентификатору, используя кеш
// или хранилище. Некорректный UUID отклоняется до запроса в базу.
func (s *SiteService) Get(ctx context.Context, id string) (geojson.Feature, error) {
	const op = "services.sites.Get"

	if _, err := uuid.Parse(id); err != nil {
		return geojson.Feature{}, fmt.Errorf("%s: %w", op, ErrSiteNotFound)
	}

	cacheKey := fmt.Sprintf("site:%s", id)
	var cached models.CulturalSite
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return geojson.DetailFeature(&cached), nil
	}

	site, err := s.repo.GetSite(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return geojson.Feature{}, fmt.Errorf("%s: %w", op, ErrSiteNotFound)
		}
		return geojson.Feature{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(cacheKey, site, time.Hour); err != nil {
		s.log.Warn("failed to cache site", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return geojson.DetailFeature(site), nil
}
