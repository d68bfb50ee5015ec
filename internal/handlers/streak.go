package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arnold/weeklygoals-api/internal/middleware"
	"github.com/arnold/weeklygoals-api/internal/models"
)

func (h *Handler) GetStreak(c *fiber.Ctx) error {
	status, err := h.Streaks.Status(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(status)
}

func (h *Handler) CheckIn(c *fiber.Ctx) error {
	var req models.CheckinRequest
	if msg := parseBody(c, &req); msg != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	status, outcome, err := h.Streaks.CheckIn(c.UserContext(), models.CheckinType(req.Type))
	if err != nil {
		return fail(c, err)
	}

	h.Hub.Broadcast(middleware.GetSessionID(c), WSEvent{
		Type: EventStreakUpdated,
		Data: status,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"streak":  status,
		"outcome": outcome,
		"message": "Progress recorded: " + req.Type + ".",
	})
}
