package studentRepo

import (
	"context"
	"errors"

	"campusminds/models"
)

// ErrNotFound signals that no profile exists under the nickname.
var ErrNotFound = errors.New("student profile not found")

// IsNotFound reports whether err is the missing-profile sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StudentRepository defines data access for anonymous student profiles.
type StudentRepository interface {
	// Upsert creates or replaces the profile stored under the nickname.
	Upsert(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByNickname(ctx context.Context, nickname string) (*models.Student, error)
	// GetByCredentials matches nickname and email case-insensitively.
	GetByCredentials(ctx context.Context, nickname, email string) (*models.Student, error)
}
