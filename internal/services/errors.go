package services

import (
	"errors"
	"fmt"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrWeekNotFound = errors.New("week not found")
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError rejects user input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
