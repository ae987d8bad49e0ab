package booking

import (
	"context"
	"sort"
	"sync"

	appointmentRepo "campusminds/database/repository/appointment"
	studentRepo "campusminds/database/repository/student"
	"campusminds/models"
)

// fakeAppointmentRepo reproduces the storage contract in memory: the insert
// is an atomic check-and-reserve on the active slot key, and status
// transitions are conditional on the current status.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	byID  map[string]models.Appointment
	slots map[string]string // active slot key -> appointment id

	insertErr error
	listErr   error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		byID:  make(map[string]models.Appointment),
		slots: make(map[string]string),
	}
}

func slotKey(counselorID, date, timeSlot string) string {
	return counselorID + "|" + date + "|" + timeSlot
}

func (f *fakeAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	key := slotKey(appt.CounselorID, appt.Date, appt.TimeSlot)
	if _, taken := f.slots[key]; taken {
		return appointmentRepo.ErrSlotTaken
	}
	f.slots[key] = appt.ID
	f.byID[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (f *fakeAppointmentRepo) UpdateStatusIfCurrent(ctx context.Context, id, expectedStatus, newStatus, meetingLink string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.byID[id]
	if !ok || appt.Status != expectedStatus {
		return nil, appointmentRepo.ErrNotFound
	}
	appt.Status = newStatus
	if meetingLink != "" {
		appt.MeetingLink = meetingLink
	}
	if !appt.IsActive() {
		delete(f.slots, slotKey(appt.CounselorID, appt.Date, appt.TimeSlot))
	}
	f.byID[id] = appt
	return &appt, nil
}

func (f *fakeAppointmentRepo) DeleteIfStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.byID[id]
	if !ok || appt.Status != status {
		return appointmentRepo.ErrNotFound
	}
	delete(f.byID, id)
	delete(f.slots, slotKey(appt.CounselorID, appt.Date, appt.TimeSlot))
	return nil
}

func (f *fakeAppointmentRepo) ListActive(ctx context.Context, counselorID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Appointment{}
	for _, appt := range f.byID {
		if appt.CounselorID == counselorID && appt.Date == date && appt.IsActive() {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeSlot < out[j].TimeSlot })
	return out, nil
}

func (f *fakeAppointmentRepo) ListByCounselorAndStatus(ctx context.Context, counselorID, status string, dateAscending bool) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Appointment{}
	for _, appt := range f.byID {
		if appt.CounselorID == counselorID && appt.Status == status {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			if dateAscending {
				return out[i].Date < out[j].Date
			}
			return out[i].Date > out[j].Date
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (f *fakeAppointmentRepo) ListByNickname(ctx context.Context, nickname string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Appointment{}
	for _, appt := range f.byID {
		if appt.StudentNickname == nickname {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// fakeStudentRepo stores profiles keyed by nickname.
type fakeStudentRepo struct {
	mu        sync.Mutex
	byNick    map[string]models.Student
	upsertErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byNick: make(map[string]models.Student)}
}

func (f *fakeStudentRepo) Upsert(ctx context.Context, student *models.Student) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.byNick[student.Nickname] = *student
	stored := f.byNick[student.Nickname]
	return &stored, nil
}

func (f *fakeStudentRepo) GetByNickname(ctx context.Context, nickname string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byNick[nickname]
	if !ok {
		return nil, studentRepo.ErrNotFound
	}
	return &stored, nil
}

func (f *fakeStudentRepo) GetByCredentials(ctx context.Context, nickname, email string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byNick[nickname]
	if !ok || stored.Email != email {
		return nil, studentRepo.ErrNotFound
	}
	return &stored, nil
}

// fakeScheduler records reminder payloads handed to it.
type fakeScheduler struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
	err      error
}

func (f *fakeScheduler) EnqueueSessionReminder(ctx context.Context, payload models.ReminderPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeAppointmentRepo, *fakeStudentRepo, *fakeScheduler) {
	repo := newFakeAppointmentRepo()
	students := newFakeStudentRepo()
	scheduler := &fakeScheduler{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Students:  students,
		Catalog:   NewSlotCatalog(nil),
		Reminders: scheduler,
	}
	return svc, repo, students, scheduler
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		CounselorID:     "c1",
		CounselorName:   "Dr. Ananya Singh",
		StudentNickname: "bluejay",
		StudentEmail:    "bluejay@campus.edu",
		StudentPhone:    "555-0100",
		StudentAge:      21,
		StudentGender:   "F",
		Date:            "2026-09-15",
		TimeSlot:        "10:00 AM",
	}
}
