package urgent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	studentRepo "campusminds/database/repository/student"
	urgentRepo "campusminds/database/repository/urgent"
	"campusminds/models"
	"campusminds/services/booking"
	"campusminds/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals the urgent request id is unknown.
var ErrNotFound = errors.New("urgent request not found")

// ErrInvalidRequest rejects an urgent request with missing fields.
var ErrInvalidRequest = errors.New("student and message are required")

// UrgentService holds urgent session requests and converts accepted ones into
// appointments.
type UrgentService interface {
	Submit(ctx context.Context, student, message string) (*models.UrgentRequest, error)
	List(ctx context.Context) ([]models.UrgentRequest, error)
	// Accept converts the urgent request into a confirmed appointment for the
	// accepting counselor. The booking goes through the booking engine with
	// an override, so it is still subject to the slot-uniqueness insert
	// rather than bypassing conflict detection.
	Accept(ctx context.Context, requestID string, counselor *models.Counselor) (*models.Appointment, error)
	Decline(ctx context.Context, requestID string) error
}

// DefaultUrgentService is the production UrgentService.
type DefaultUrgentService struct {
	Repo     urgentRepo.UrgentRepository
	Students studentRepo.StudentRepository
	Booking  booking.BookingService
}

// Submit stores a new urgent request.
func (s *DefaultUrgentService) Submit(ctx context.Context, student, message string) (*models.UrgentRequest, error) {
	student = strings.TrimSpace(student)
	message = strings.TrimSpace(message)
	if student == "" || message == "" {
		return nil, ErrInvalidRequest
	}

	req := &models.UrgentRequest{
		ID:        uuid.New().String(),
		Student:   student,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to store urgent request: %w", err)
	}

	utils.GetLogger().Info("urgent request submitted", zap.String("id", req.ID), zap.String("student", student))
	return req, nil
}

// List returns pending urgent requests, newest first.
func (s *DefaultUrgentService) List(ctx context.Context) ([]models.UrgentRequest, error) {
	return s.Repo.GetAll(ctx)
}

// Accept books and confirms an immediate session for the requesting student,
// then removes the urgent request.
func (s *DefaultUrgentService) Accept(ctx context.Context, requestID string, counselor *models.Counselor) (*models.Appointment, error) {
	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		if urgentRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bookingReq := models.BookingRequest{
		CounselorID:   counselor.ID,
		CounselorName: counselor.Name,
		Date:          time.Now().Format("2006-01-02"),
		TimeSlot:      "NOW",
	}
	s.fillStudentSnapshot(ctx, &bookingReq, req.Student)

	appt, err := s.Booking.Book(ctx, bookingReq, booking.BookingOptions{Override: true})
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Booking.Approve(ctx, appt.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Delete(ctx, requestID); err != nil && !urgentRepo.IsNotFound(err) {
		utils.GetLogger().Warn("failed to remove accepted urgent request",
			zap.String("id", requestID), zap.Error(err))
	}

	utils.GetLogger().Info("urgent request accepted",
		zap.String("requestId", requestID), zap.String("appointmentId", confirmed.ID))
	return confirmed, nil
}

// Decline removes an urgent request without booking anything.
func (s *DefaultUrgentService) Decline(ctx context.Context, requestID string) error {
	if err := s.Repo.Delete(ctx, requestID); err != nil {
		if urgentRepo.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// fillStudentSnapshot copies the stored profile onto the booking request, or
// falls back to placeholder contact fields when the student never saved one.
func (s *DefaultUrgentService) fillStudentSnapshot(ctx context.Context, req *models.BookingRequest, nickname string) {
	req.StudentNickname = nickname
	req.StudentEmail = "urgent@campus.edu"
	req.StudentAge = 20
	req.StudentGender = "N/A"

	if s.Students == nil {
		return
	}
	profile, err := s.Students.GetByNickname(ctx, nickname)
	if err != nil {
		return
	}
	req.StudentEmail = profile.Email
	req.StudentPhone = profile.Phone
	req.StudentAge = profile.Age
	req.StudentGender = profile.Gender
}
