// Package models содержит доменные структуры культурных объектов.
// Полная запись используется в детальной выдаче, узкая проекция — в списках.
package models

import "time"

// CulturalSite основная модель культурного объекта.
// Координаты Lon/Lat — производные значения, вычисляемые из
// геометрии (ST_X/ST_Y) при чтении; отдельно они не хранятся.
type CulturalSite struct {
	ID               string     // Уникальный идентификатор (UUID)
	ExternalCode     *string    // Внешний код вида TR-IST-0001 (опционально, уникален)
	NameTR           string     // Название на турецком (обязательное)
	NameEN           *string    // Название на английском
	Category         string     // Категория
	SubCategory      *string    // Подкатегория
	City             *string    // Город
	District         *string    // Район
	Neighbourhood    *string    // Квартал
	Address          *string    // Адрес свободным текстом
	RegionID         *string    // Код региона
	SummaryTR        *string    // Краткое описание на турецком
	SummaryEN        *string    // Краткое описание на английском
	OpeningHours     *string    // Часы работы
	TicketRequired   bool       // Требуется ли билет
	Website          *string    // Сайт
	MainImageURL     *string    // Основное изображение
	IsUnesco         bool       // Входит ли в список ЮНЕСКО
	ProtectionStatus *string    // Статус охраны
	SourceName       *string    // Название источника данных
	SourceURL        *string    // Ссылка на источник
	LastUpdate       *time.Time // Дата последнего внешнего обновления
	Lon              float64    // Долгота (EPSG:4326)
	Lat              float64    // Широта (EPSG:4326)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SiteSummary узкая проекция для списочных запросов: только поля,
// нужные карте и списку. Детальные поля (адрес, часы работы,
// происхождение данных) сюда не попадают, чтобы не раздувать ответ.
type SiteSummary struct {
	ID           string
	NameTR       string
	NameEN       *string
	Category     string
	SubCategory  *string
	City         *string
	District     *string
	MainImageURL *string
	SummaryTR    *string
	Lon          float64
	Lat          float64
}
