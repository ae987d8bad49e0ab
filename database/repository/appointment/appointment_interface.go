package appointmentRepo

import (
	"context"
	"errors"

	"campusminds/models"
)

// Sentinel errors translated from storage-level outcomes. ErrSlotTaken is the
// mapped form of the partial unique index rejecting a second active booking
// for the same (counselorId, date, timeSlot) triple.
var (
	ErrNotFound  = errors.New("appointment not found")
	ErrSlotTaken = errors.New("slot already has an active appointment")
)

// IsNotFound reports whether err is the missing-appointment sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSlotTaken reports whether err is the uniqueness-constraint sentinel.
func IsSlotTaken(err error) bool {
	return errors.Is(err, ErrSlotTaken)
}

// AppointmentRepository defines data access for appointments.
type AppointmentRepository interface {
	// Insert persists a new appointment. The storage layer is the final
	// arbiter of slot uniqueness: a constraint violation returns ErrSlotTaken
	// and leaves no record behind.
	Insert(ctx context.Context, appt *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// UpdateStatusIfCurrent transitions an appointment from expectedStatus to
	// newStatus, setting meetingLink when non-empty, and returns the updated
	// document. It returns ErrNotFound when no appointment currently holds
	// expectedStatus under that id, so racing transitions resolve to exactly
	// one winner.
	UpdateStatusIfCurrent(ctx context.Context, id, expectedStatus, newStatus, meetingLink string) (*models.Appointment, error)

	// DeleteIfStatus removes the appointment only while it holds the given
	// status. Returns ErrNotFound when id does not match any such document.
	DeleteIfStatus(ctx context.Context, id, status string) error

	// ListActive returns appointments for (counselorId, date) whose status is
	// Pending or Confirmed.
	ListActive(ctx context.Context, counselorID, date string) ([]models.Appointment, error)

	// ListByCounselorAndStatus returns a counselor's appointments with the
	// given status, sorted by date ascending or descending.
	ListByCounselorAndStatus(ctx context.Context, counselorID, status string, dateAscending bool) ([]models.Appointment, error)

	// ListByNickname returns every appointment booked under a student
	// nickname, any counselor and status, ascending by date.
	ListByNickname(ctx context.Context, nickname string) ([]models.Appointment, error)
}
