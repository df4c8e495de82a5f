package domain

import "fmt"

type ErrCustomerNotFound struct {
	Message string
}

func (e *ErrCustomerNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "customer not found"
}

type ErrPhotoNotFound struct {
	Message string
}

func (e *ErrPhotoNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "photo not found"
}

type ErrMeasurementsNotFound struct {
	Message string
}

func (e *ErrMeasurementsNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "measurements not found"
}

type ErrSizeChartNotFound struct {
	Message string
}

func (e *ErrSizeChartNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "size chart not found"
}

type ErrAccountNotFound struct {
	Message string
}

func (e *ErrAccountNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "account not found"
}

// ErrAccountExists is returned when registering an email that already has an account.
type ErrAccountExists struct {
	Email string
}

func (e *ErrAccountExists) Error() string {
	return fmt.Sprintf("an account with email %s already exists", e.Email)
}

// ErrInvalidStatusTransition is returned when a photo status update would
// move the status backward.
type ErrInvalidStatusTransition struct {
	From PhotoStatus
	To   PhotoStatus
}

func (e *ErrInvalidStatusTransition) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ValidationError represents an error caused by invalid input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{Message: message}
}
