package repository

import (
	"strings"

	"hotelinfo/constants"

	"gorm.io/gorm"
)

// ListFilter is shared by every paginated list. Name matches the resource's
// display column, SearchQuery additionally matches the description.
type ListFilter struct {
	Name        string
	SearchQuery string
	PageNumber  int
	PageSize    int
}

type PaginationMetaData struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPageCount int   `json:"totalPageCount"`
	TotalItemCount int64 `json:"totalItemCount"`
	PageSize       int   `json:"pageSize"`
}

// NormalizePage clamps the requested page to the allowed range.
func NormalizePage(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = constants.DefaultPageNumber
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return pageNumber, pageSize
}

func NewPaginationMetaData(totalItemCount int64, pageSize, currentPage int) PaginationMetaData {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItemCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginationMetaData{
		CurrentPage:    currentPage,
		TotalPageCount: totalPages,
		TotalItemCount: totalItemCount,
		PageSize:       pageSize,
	}
}

// Paginate is a gorm scope applying offset and limit.
func Paginate(pageNumber, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}
}

// findPage counts query, then loads one page of it. Preloads run on the page
// query only.
func findPage[T any](query *gorm.DB, pageNumber, pageSize int, order string, preloads ...string) ([]T, PaginationMetaData, error) {
	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, PaginationMetaData{}, err
	}

	for _, p := range preloads {
		query = query.Preload(p)
	}
	items := make([]T, 0, pageSize)
	if err := query.Order(order).Scopes(Paginate(pageNumber, pageSize)).Find(&items).Error; err != nil {
		return nil, PaginationMetaData{}, err
	}
	return items, NewPaginationMetaData(total, pageSize, pageNumber), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern using ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func likePattern(s string) string {
	return "%" + escapeLike(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// whereContains filters column case-insensitively when value is set.
func whereContains(q *gorm.DB, column, value string) *gorm.DB {
	if strings.TrimSpace(value) == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", likePattern(value))
}

func whereSearch(q *gorm.DB, searchQuery string, columns ...string) *gorm.DB {
	if strings.TrimSpace(searchQuery) == "" || len(columns) == 0 {
		return q
	}
	pattern := likePattern(searchQuery)
	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		clauses = append(clauses, "LOWER("+c+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
