package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PageSize is the fixed number of rows per list page.
const PageSize = 20

// ErrorResponse creates a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// SuccessResponse creates a standardized success response
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// Pagination describes one page of a filtered result set. Total counts every
// row matching the filters, independent of the page window.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedResponse structure for paginated results
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// NewPagination computes the pagination envelope for a 1-based page number.
func NewPagination(page int, total int64) Pagination {
	totalPages := int((total + PageSize - 1) / PageSize)
	return Pagination{
		Page:       page,
		PageSize:   PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// OptionalText trims an optional field, mapping empty-after-trim to NULL.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
