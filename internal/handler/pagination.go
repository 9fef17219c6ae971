package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) PaginatedResponse[T] {
	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Paginate runs a count plus an offset query against the prepared query
// and reads page/per_page from the request, clamping per_page to 100.
func Paginate[T any](c *gin.Context, query *gorm.DB) ([]T, int, int, int64, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	var total int64
	var model T
	if err := query.Model(&model).Count(&total).Error; err != nil {
		return nil, page, perPage, 0, err
	}

	var items []T
	err = query.Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error
	return items, page, perPage, total, err
}
