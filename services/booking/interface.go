package booking

import (
	"context"

	appointmentRepo "campusminds/database/repository/appointment"
	studentRepo "campusminds/database/repository/student"
	"campusminds/models"
)

// BookingOptions tweaks how a booking request is processed.
type BookingOptions struct {
	// Override skips catalog-membership validation for the time slot. Used by
	// the urgent-request path, which still goes through the unique insert so
	// no booking can bypass the conflict check.
	Override bool
}

// ReminderScheduler enqueues a session reminder once an appointment is
// confirmed. Implemented by the cron package; optional.
type ReminderScheduler interface {
	EnqueueSessionReminder(ctx context.Context, payload models.ReminderPayload) error
}

// BookingService is the slot-booking and appointment-lifecycle engine.
type BookingService interface {
	// GetSlots resolves the availability view for a (counselor, date) pair.
	// The result always has exactly one entry per catalog label, in order.
	GetSlots(ctx context.Context, counselorID, date string) ([]models.SlotStatus, error)

	// Book validates and commits a new Pending appointment, upserting the
	// student profile alongside. Returns ConflictError when the slot is held
	// by an active appointment.
	Book(ctx context.Context, req models.BookingRequest, opts BookingOptions) (*models.Appointment, error)

	// Approve moves Pending to Confirmed and attaches the meeting link.
	Approve(ctx context.Context, id string) (*models.Appointment, error)

	// Complete moves Confirmed to Completed.
	Complete(ctx context.Context, id string) (*models.Appointment, error)

	// Decline removes an appointment that is still Pending, freeing its slot.
	Decline(ctx context.Context, id string) error

	// Dashboard projects a counselor's appointments into pending, confirmed
	// and completed buckets plus summary counters.
	Dashboard(ctx context.Context, counselorID string) (*models.DashboardSummary, error)

	// StudentAppointments lists every appointment under a nickname, all
	// statuses and counselors, ascending by date.
	StudentAppointments(ctx context.Context, nickname string) ([]models.Appointment, error)
}

// DefaultBookingService is the production BookingService backed by the
// appointment and student repositories.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Students  studentRepo.StudentRepository
	Catalog   *SlotCatalog
	Reminders ReminderScheduler // optional
}
