// SiteFilter содержит необязательные параметры выборки культурных объектов.
// Указатель nil означает "параметр не передан"; для булевых полей это
// позволяет отличить отсутствие фильтра от явного false.
package models

// DefaultSiteLimit верхняя граница выдачи, применяется всегда,
// если limit не задан явно.
const DefaultSiteLimit = 2000

// SiteFilter параметры фильтрации списка объектов.
type SiteFilter struct {
	Search   *string  // Подстрочный поиск по названиям (без учёта регистра)
	MinLon   *float64 // Границы bbox; фильтр применяется только при всех четырёх
	MinLat   *float64
	MaxLon   *float64
	MaxLat   *float64
	City     *string
	District *string
	Category *string
	IsUnesco *bool
	Limit    int // 0 означает DefaultSiteLimit
}

// HasBBox сообщает, заданы ли все четыре границы прямоугольника.
// Частично заданный bbox считается отсутствующим, это не ошибка.
func (f SiteFilter) HasBBox() bool {
	return f.MinLon != nil && f.MinLat != nil && f.MaxLon != nil && f.MaxLat != nil
}

// EffectiveLimit возвращает итоговое ограничение размера выдачи.
func (f SiteFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultSiteLimit
	}
	return f.Limit
}
