package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetActivity returns paginated activity, newest first.
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	activities, total, err := h.Activity.List(c.UserContext(), page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"activities": activities,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}
