package booking

import (
	"context"

	appointmentRepo "campusminds/database/repository/appointment"
	"campusminds/models"
	"campusminds/utils"

	"go.uber.org/zap"
)

// MeetingLinkPrefix is the base of every issued meeting room URL. The room
// name is derived from the appointment id, so the link is stable and unique
// without contacting any external service.
const MeetingLinkPrefix = "https://meet.jit.si/campus-minds-"

// MeetingLinkFor derives the meeting link for an appointment id.
func MeetingLinkFor(id string) string {
	return MeetingLinkPrefix + id
}

// Approve transitions Pending -> Confirmed and attaches the meeting link. The
// transition is a conditional update keyed on the current status, so two
// racing approvals resolve to one Confirmed appointment with one link; the
// loser sees IllegalStateError.
func (s *DefaultBookingService) Approve(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.transition(ctx, id, models.StatusPending, models.StatusConfirmed, MeetingLinkFor(id))
	if err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		payload := models.ReminderPayload{
			AppointmentID:   appt.ID,
			CounselorName:   appt.CounselorName,
			StudentNickname: appt.StudentNickname,
			Date:            appt.Date,
			TimeSlot:        appt.TimeSlot,
			MeetingLink:     appt.MeetingLink,
		}
		// A reminder that fails to enqueue never fails the approval.
		if err := s.Reminders.EnqueueSessionReminder(ctx, payload); err != nil {
			utils.GetLogger().Warn("failed to enqueue session reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// Complete transitions Confirmed -> Completed.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.StatusConfirmed, models.StatusCompleted, "")
}

// Decline hard-deletes an appointment that is still Pending so the slot is
// immediately free again.
func (s *DefaultBookingService) Decline(ctx context.Context, id string) error {
	err := s.Repo.DeleteIfStatus(ctx, id, models.StatusPending)
	if err == nil {
		utils.GetLogger().Info("appointment declined", zap.String("id", id))
		return nil
	}
	if !appointmentRepo.IsNotFound(err) {
		return StorageError{Err: err}
	}

	// The conditional delete missed: distinguish an unknown id from an
	// appointment that already left Pending.
	current, getErr := s.Repo.GetByID(ctx, id)
	if getErr != nil {
		if appointmentRepo.IsNotFound(getErr) {
			return NotFoundError{Resource: "appointment", ID: id}
		}
		return StorageError{Err: getErr}
	}
	return IllegalStateError{Current: current.Status, Expected: models.StatusPending}
}

func (s *DefaultBookingService) transition(ctx context.Context, id, expected, next, meetingLink string) (*models.Appointment, error) {
	appt, err := s.Repo.UpdateStatusIfCurrent(ctx, id, expected, next, meetingLink)
	if err == nil {
		utils.GetLogger().Info("appointment transitioned",
			zap.String("id", id), zap.String("from", expected), zap.String("to", next))
		return appt, nil
	}
	if !appointmentRepo.IsNotFound(err) {
		return nil, StorageError{Err: err}
	}

	current, getErr := s.Repo.GetByID(ctx, id)
	if getErr != nil {
		if appointmentRepo.IsNotFound(getErr) {
			return nil, NotFoundError{Resource: "appointment", ID: id}
		}
		return nil, StorageError{Err: getErr}
	}
	return nil, IllegalStateError{Current: current.Status, Expected: expected}
}
