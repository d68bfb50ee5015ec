package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/arnold/weeklygoals-api/internal/handlers"
	"github.com/arnold/weeklygoals-api/internal/middleware"
)

func Setup(app *fiber.App, h *handlers.Handler, authEnabled bool) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/token", h.IssueToken)

	protected := api.Group("/", middleware.Protected(h.JWTSecret, authEnabled))

	goals := protected.Group("/goals")
	goals.Get("/", h.ListGoals)
	goals.Post("/", h.CreateGoal)
	goals.Delete("/", h.ClearGoals)
	goals.Get("/:id", h.GetGoal)
	goals.Post("/:id/weeks/:weekKey/tasks", h.AddTask)
	goals.Post("/:id/weeks/:weekKey/tasks/:taskId/toggle", h.ToggleTask)

	streak := protected.Group("/streak")
	streak.Get("/", h.GetStreak)
	streak.Post("/checkins", h.CheckIn)

	protected.Delete("/data", h.ClearAll)
	protected.Get("/activity", h.GetActivity)

	// Device token for push notifications
	protected.Post("/device-token", h.RegisterDeviceToken)

	// WebSocket for live updates across open screens
	app.Use("/ws", handlers.WebSocketUpgrade(h.JWTSecret, authEnabled))
	app.Get("/ws", websocket.New(h.HandleWebSocket))
}
