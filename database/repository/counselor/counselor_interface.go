package counselorRepo

import (
	"context"
	"errors"

	"campusminds/models"
)

// ErrNotFound signals that no counselor matches the lookup.
var ErrNotFound = errors.New("counselor not found")

// IsNotFound reports whether err is the missing-counselor sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// CounselorRepository defines data access for counselor profiles.
type CounselorRepository interface {
	Create(ctx context.Context, counselor *models.Counselor) error
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	// GetByName matches the display name case-insensitively.
	GetByName(ctx context.Context, name string) (*models.Counselor, error)
	GetAll(ctx context.Context) ([]models.Counselor, error)
	// SetOnlineStatus flips the isOnline flag and returns the stored value.
	SetOnlineStatus(ctx context.Context, name string, online bool) (bool, error)
	DeleteAll(ctx context.Context) error
}
