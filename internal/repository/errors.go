package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NotFoundError is an error type for when a resource is not found.
type NotFoundError struct {
	message string
}

// NewNotFoundError returns a NotFoundError carrying message.
func NewNotFoundError(message string) NotFoundError {
	return NotFoundError{message: message}
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return e.message
}

// ErrEmailTaken is returned when a user is created with an email already in use.
var ErrEmailTaken = errors.New("email already in use")

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err came from a unique constraint,
// for either supported driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return true
	}
	return false
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
