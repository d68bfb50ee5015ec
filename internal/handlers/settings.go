package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arnold/weeklygoals-api/internal/middleware"
	"github.com/arnold/weeklygoals-api/internal/models"
)

// ClearAll deletes goals and streak data.
func (h *Handler) ClearAll(c *fiber.Ctx) error {
	if err := h.Settings.ClearAll(c.UserContext()); err != nil {
		return fail(c, err)
	}

	sessionID := middleware.GetSessionID(c)
	h.Hub.Broadcast(sessionID, WSEvent{Type: EventGoalsCleared})
	h.Hub.Broadcast(sessionID, WSEvent{Type: EventStreakUpdated})

	return c.JSON(fiber.Map{
		"message": "All app data has been cleared.",
	})
}

// RegisterDeviceToken stores the FCM token streak notifications go to.
func (h *Handler) RegisterDeviceToken(c *fiber.Ctx) error {
	var req models.DeviceTokenRequest
	if msg := parseBody(c, &req); msg != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	if err := h.Push.RegisterDevice(c.UserContext(), req.Token); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Device token registered",
		"pushEnabled": h.Push.Enabled(),
	})
}
