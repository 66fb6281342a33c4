package services

import "chairai-backend/internal/models"

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func buildPagination(page, limit, total int) models.Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
