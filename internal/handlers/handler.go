package handlers

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/arnold/weeklygoals-api/internal/services"
	"github.com/arnold/weeklygoals-api/internal/store"
	"github.com/arnold/weeklygoals-api/internal/streak"
)

// Handler holds the services the HTTP routes call into.
type Handler struct {
	Goals    *services.GoalService
	Streaks  *services.StreakService
	Settings *services.SettingsService
	Activity *services.ActivityService
	Push     *services.PushService
	Hub      *Hub

	JWTSecret    string
	PasscodeHash string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// parseBody decodes and validates the request body. It returns the 400
// response body on failure and nil otherwise.
func parseBody(c *fiber.Ctx, req interface{}) fiber.Map {
	if err := c.BodyParser(req); err != nil {
		return fiber.Map{"error": "Invalid request body"}
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fiber.Map{
				"error": validationMessage(verrs[0]),
				"field": verrs[0].Field(),
			}
		}
		return fiber.Map{"error": "Invalid request body"}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// fail maps a service error to its HTTP response.
func fail(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, services.ErrGoalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	case errors.Is(err, services.ErrWeekNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Week not found",
		})
	case errors.Is(err, services.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	case errors.Is(err, streak.ErrAlreadyCheckedIn):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You've already checked in for today.",
		})
	case errors.Is(err, streak.ErrInvalidCheckinType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "type must be one of: partial full",
			"field": "type",
		})
	case errors.Is(err, store.ErrRead):
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load data",
		})
	case errors.Is(err, store.ErrWrite):
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save data",
		})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
