// Динамическая сборка предикатов выборки культурных объектов.
//
// BuildSiteFilter сворачивает упорядоченный список необязательных
// конструкторов-предикатов в один параметризованный хвост SQL-запроса.
// Каждый конструктор чистый и проверяется отдельно. Значения пользователя
// попадают только в связанные параметры, в текст запроса — никогда.
package repository

import (
	"fmt"
	"strings"

	"github.com/edakaya/heritage-api/internal/models"
)

// siteQuery аккумулятор предикатов и связанных параметров.
type siteQuery struct {
	clauses []string
	args    []any
}

// add добавляет предикат, подставляя в него номера позиций параметров.
// Шаблон содержит $%d на каждое значение из args.
func (q *siteQuery) add(clause string, args ...any) {
	positions := make([]any, len(args))
	for i := range args {
		positions[i] = len(q.args) + i + 1
	}
	q.clauses = append(q.clauses, fmt.Sprintf(clause, positions...))
	q.args = append(q.args, args...)
}

// Порядок конструкторов фиксирован: от него зависит нумерация параметров.
var siteConds = []func(models.SiteFilter, *siteQuery){
	searchCond,
	bboxCond,
	cityCond,
	districtCond,
	categoryCond,
	unescoCond,
}

// searchCond подстрочный поиск без учёта регистра сразу по двум названиям.
// Предикат добавляется одной неделимой единицей, скобки обязательны.
func searchCond(f models.SiteFilter, q *siteQuery) {
	if f.Search == nil || *f.Search == "" {
		return
	}
	pattern := "%" + *f.Search + "%"
	q.add("(name_tr ILIKE $%d OR name_en ILIKE $%d)", pattern, pattern)
}

// bboxCond пересечение геометрии с прямоугольником в EPSG:4326.
// Частично заданный bbox молча игнорируется, фильтр не применяется.
func bboxCond(f models.SiteFilter, q *siteQuery) {
	if !f.HasBBox() {
		return
	}
	q.add("geom && ST_MakeEnvelope($%d, $%d, $%d, $%d, 4326)",
		*f.MinLon, *f.MinLat, *f.MaxLon, *f.MaxLat)
}

func cityCond(f models.SiteFilter, q *siteQuery) {
	if f.City == nil || *f.City == "" {
		return
	}
	q.add("city = $%d", *f.City)
}

func districtCond(f models.SiteFilter, q *siteQuery) {
	if f.District == nil || *f.District == "" {
		return
	}
	q.add("district = $%d", *f.District)
}

func categoryCond(f models.SiteFilter, q *siteQuery) {
	if f.Category == nil || *f.Category == "" {
		return
	}
	q.add("category = $%d", *f.Category)
}

// unescoCond различает "не передан" (nil) и явный false: false — тоже фильтр.
func unescoCond(f models.SiteFilter, q *siteQuery) {
	if f.IsUnesco == nil {
		return
	}
	q.add("is_unesco = $%d", *f.IsUnesco)
}

// BuildSiteFilter собирает WHERE-часть и LIMIT с набором параметров.
// Присутствующие предикаты соединяются через AND; без предикатов
// выборка ограничена только лимитом.
func BuildSiteFilter(f models.SiteFilter) (string, []any) {
	q := &siteQuery{}
	for _, cond := range siteConds {
		cond(f, q)
	}

	var sb strings.Builder
	if len(q.clauses) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(q.clauses, " AND "))
		sb.WriteString(" ")
	}
	q.args = append(q.args, f.EffectiveLimit())
	fmt.Fprintf(&sb, "LIMIT $%d", len(q.args))

	return sb.String(), q.args
}
