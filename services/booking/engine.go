package booking

import (
	"context"
	"strings"
	"time"

	appointmentRepo "campusminds/database/repository/appointment"
	"campusminds/models"
	"campusminds/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func parseDate(date string) (time.Time, error) {
	return time.Parse(dateLayout, date)
}

// Book validates the request, upserts the student profile, and inserts a
// Pending appointment. The unique index on the appointments collection is the
// final arbiter of slot uniqueness; an in-process pre-check alone would race
// under concurrent load.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest, opts BookingOptions) (*models.Appointment, error) {
	logger := utils.GetLogger()

	req.StudentNickname = strings.TrimSpace(req.StudentNickname)
	req.StudentEmail = strings.TrimSpace(req.StudentEmail)
	req.CounselorID = strings.TrimSpace(req.CounselorID)
	req.CounselorName = strings.TrimSpace(req.CounselorName)

	if err := s.validate(req, opts); err != nil {
		return nil, err
	}

	// Profile persistence is a separate failure domain: it is not rolled back
	// by a later booking conflict, and its failure does not block the booking.
	if s.Students != nil {
		profile := &models.Student{
			Nickname: req.StudentNickname,
			Email:    req.StudentEmail,
			Phone:    req.StudentPhone,
			Age:      req.StudentAge,
			Gender:   req.StudentGender,
		}
		if _, err := s.Students.Upsert(ctx, profile); err != nil {
			logger.Warn("student profile upsert failed",
				zap.String("nickname", req.StudentNickname), zap.Error(err))
		}
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		CounselorID:     req.CounselorID,
		CounselorName:   req.CounselorName,
		StudentNickname: req.StudentNickname,
		StudentEmail:    req.StudentEmail,
		StudentPhone:    req.StudentPhone,
		StudentAge:      req.StudentAge,
		StudentGender:   req.StudentGender,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.Repo.Insert(ctx, appt); err != nil {
		if appointmentRepo.IsSlotTaken(err) {
			logger.Info("booking conflict",
				zap.String("counselorId", req.CounselorID),
				zap.String("date", req.Date),
				zap.String("timeSlot", req.TimeSlot))
			return nil, ConflictError{Date: req.Date, TimeSlot: req.TimeSlot}
		}
		return nil, StorageError{Err: err}
	}

	logger.Info("appointment booked",
		zap.String("id", appt.ID),
		zap.String("counselorId", appt.CounselorID),
		zap.String("date", appt.Date),
		zap.String("timeSlot", appt.TimeSlot))
	return appt, nil
}

func (s *DefaultBookingService) validate(req models.BookingRequest, opts BookingOptions) error {
	if req.CounselorID == "" {
		return ValidationError{Field: "counselorId", Reason: "must not be empty"}
	}
	if req.CounselorName == "" {
		return ValidationError{Field: "counselorName", Reason: "must not be empty"}
	}
	if req.StudentNickname == "" {
		return ValidationError{Field: "studentNickname", Reason: "must not be empty"}
	}
	if req.StudentEmail == "" {
		return ValidationError{Field: "studentEmail", Reason: "must not be empty"}
	}
	if req.StudentAge <= 0 {
		return ValidationError{Field: "studentAge", Reason: "must be a positive integer"}
	}
	if req.StudentGender == "" {
		return ValidationError{Field: "studentGender", Reason: "must not be empty"}
	}
	if _, err := parseDate(req.Date); err != nil {
		return ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if req.TimeSlot == "" {
		return ValidationError{Field: "timeSlot", Reason: "must not be empty"}
	}
	if !opts.Override && !s.Catalog.Contains(req.TimeSlot) {
		return ValidationError{Field: "timeSlot", Reason: "not a bookable slot"}
	}
	return nil
}
