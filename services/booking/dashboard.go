package booking

import (
	"context"

	"campusminds/models"
)

// Dashboard projects a counselor's appointments into status buckets and
// summary counters. Read-only; an empty schedule yields empty slices and zero
// counters, never an error.
func (s *DefaultBookingService) Dashboard(ctx context.Context, counselorID string) (*models.DashboardSummary, error) {
	if counselorID == "" {
		return nil, ValidationError{Field: "counselorId", Reason: "must not be empty"}
	}

	pending, err := s.Repo.ListByCounselorAndStatus(ctx, counselorID, models.StatusPending, true)
	if err != nil {
		return nil, StorageError{Err: err}
	}
	confirmed, err := s.Repo.ListByCounselorAndStatus(ctx, counselorID, models.StatusConfirmed, true)
	if err != nil {
		return nil, StorageError{Err: err}
	}
	completed, err := s.Repo.ListByCounselorAndStatus(ctx, counselorID, models.StatusCompleted, false)
	if err != nil {
		return nil, StorageError{Err: err}
	}

	nicknames := make(map[string]struct{})
	for _, appt := range confirmed {
		nicknames[appt.StudentNickname] = struct{}{}
	}
	for _, appt := range completed {
		nicknames[appt.StudentNickname] = struct{}{}
	}

	return &models.DashboardSummary{
		Pending:   pending,
		Confirmed: confirmed,
		Completed: completed,
		Stats: models.DashboardStats{
			StudentsHelped: len(nicknames),
			HoursDedicated: len(completed),
		},
	}, nil
}

// StudentAppointments lists every appointment under a nickname, ascending by
// date, across all counselors and statuses.
func (s *DefaultBookingService) StudentAppointments(ctx context.Context, nickname string) ([]models.Appointment, error) {
	if nickname == "" {
		return nil, ValidationError{Field: "nickname", Reason: "must not be empty"}
	}
	appointments, err := s.Repo.ListByNickname(ctx, nickname)
	if err != nil {
		return nil, StorageError{Err: err}
	}
	return appointments, nil
}
