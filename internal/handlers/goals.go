package handlers

import (
	"cloud.google.com/go/civil"
	"github.com/gofiber/fiber/v2"

	"github.com/arnold/weeklygoals-api/internal/middleware"
	"github.com/arnold/weeklygoals-api/internal/models"
	"github.com/arnold/weeklygoals-api/internal/services"
)

func (h *Handler) ListGoals(c *fiber.Ctx) error {
	goals, err := h.Goals.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(goals)
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if msg := parseBody(c, &req); msg != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	start, err := civil.ParseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "startDate must be a date in YYYY-MM-DD format",
			"field": "startDate",
		})
	}
	end, err := civil.ParseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "endDate must be a date in YYYY-MM-DD format",
			"field": "endDate",
		})
	}

	goal, err := h.Goals.Create(c.UserContext(), services.CreateGoalInput{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return fail(c, err)
	}

	h.Hub.Broadcast(middleware.GetSessionID(c), WSEvent{
		Type:   EventGoalCreated,
		GoalID: goal.ID,
		Data:   goal,
	})

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// GetGoal returns a goal with its weeks, partitioning it on first load.
func (h *Handler) GetGoal(c *fiber.Ctx) error {
	detail, err := h.Goals.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

func (h *Handler) AddTask(c *fiber.Ctx) error {
	var req models.AddTaskRequest
	if msg := parseBody(c, &req); msg != nil {
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	detail, task, err := h.Goals.AddTask(c.UserContext(), c.Params("id"), c.Params("weekKey"), req.Text)
	if err != nil {
		return fail(c, err)
	}

	h.Hub.Broadcast(middleware.GetSessionID(c), WSEvent{
		Type:   EventGoalUpdated,
		GoalID: detail.ID,
		Data:   detail,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"goal": detail,
		"task": task,
	})
}

func (h *Handler) ToggleTask(c *fiber.Ctx) error {
	detail, err := h.Goals.ToggleTask(c.UserContext(), c.Params("id"), c.Params("weekKey"), c.Params("taskId"))
	if err != nil {
		return fail(c, err)
	}

	h.Hub.Broadcast(middleware.GetSessionID(c), WSEvent{
		Type:   EventGoalUpdated,
		GoalID: detail.ID,
		Data:   detail,
	})

	return c.JSON(detail)
}

// ClearGoals deletes every goal but keeps the streak.
func (h *Handler) ClearGoals(c *fiber.Ctx) error {
	if err := h.Settings.ClearGoals(c.UserContext()); err != nil {
		return fail(c, err)
	}

	h.Hub.Broadcast(middleware.GetSessionID(c), WSEvent{Type: EventGoalsCleared})

	return c.JSON(fiber.Map{
		"message": "All goal data has been cleared.",
	})
}
