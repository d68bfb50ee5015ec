package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arnold/weeklygoals-api/internal/middleware"
	"github.com/arnold/weeklygoals-api/internal/models"
)

// IssueToken exchanges the app passcode for a session token. Without a
// configured passcode any passcode is accepted.
func (h *Handler) IssueToken(c *fiber.Ctx) error {
	var req models.TokenRequest
	if msg := parseBody(c, &req); msg != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	if h.PasscodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.PasscodeHash), []byte(req.Passcode)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid passcode",
			})
		}
	}

	sessionID := uuid.New()
	token, err := middleware.GenerateToken(h.JWTSecret, sessionID)
	if err != nil {
		log.Printf("auth: failed to sign token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(models.TokenResponse{
		Token:     token,
		SessionID: sessionID.String(),
	})
}
