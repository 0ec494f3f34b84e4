// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrQuestNotFound is a sentinel error
type ErrQuestNotFound struct {
	QuestID string
}

func (e *ErrQuestNotFound) Error() string {
	return fmt.Sprintf("quest with ID %s not found", e.QuestID)
}

// Helper constructor
func NewQuestNotFound(id string) error {
	return &ErrQuestNotFound{QuestID: id}
}

// ValidationError rejects bad input synchronously, before any state mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
