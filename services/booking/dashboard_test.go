package booking

import (
	"context"
	"testing"

	"campusminds/models"
)

func book(t *testing.T, svc *DefaultBookingService, counselorID, nickname, date, slot string) *models.Appointment {
	t.Helper()
	req := validRequest()
	req.CounselorID = counselorID
	req.StudentNickname = nickname
	req.StudentEmail = nickname + "@campus.edu"
	req.Date = date
	req.TimeSlot = slot
	appt, err := svc.Book(context.Background(), req, BookingOptions{})
	if err != nil {
		t.Fatalf("Book(%s, %s, %s) failed: %v", nickname, date, slot, err)
	}
	return appt
}

func TestDashboardEmpty(t *testing.T) {
	svc, _, _, _ := newTestService()

	summary, err := svc.Dashboard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if summary.Pending == nil || summary.Confirmed == nil || summary.Completed == nil {
		t.Fatalf("buckets must be empty slices, not nil")
	}
	if len(summary.Pending)+len(summary.Confirmed)+len(summary.Completed) != 0 {
		t.Fatalf("expected empty buckets")
	}
	if summary.Stats.StudentsHelped != 0 || summary.Stats.HoursDedicated != 0 {
		t.Fatalf("expected zero counters, got %+v", summary.Stats)
	}
}

func TestDashboardBucketsAndCounters(t *testing.T) {
	svc, _, _, _ := newTestService()

	// Pending stays pending.
	book(t, svc, "c1", "bluejay", "2026-09-15", "10:00 AM")

	// Two confirmed, same student twice counts once.
	a := book(t, svc, "c1", "riverstone", "2026-09-15", "11:00 AM")
	b := book(t, svc, "c1", "riverstone", "2026-09-16", "11:00 AM")
	for _, appt := range []*models.Appointment{a, b} {
		if _, err := svc.Approve(context.Background(), appt.ID); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
	}

	// One completed for a third student.
	c := book(t, svc, "c1", "fernleaf", "2026-09-14", "12:00 PM")
	if _, err := svc.Approve(context.Background(), c.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if _, err := svc.Complete(context.Background(), c.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	// Another counselor's appointment must not leak in.
	book(t, svc, "c2", "bluejay", "2026-09-15", "10:00 AM")

	summary, err := svc.Dashboard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(summary.Pending) != 1 || len(summary.Confirmed) != 2 || len(summary.Completed) != 1 {
		t.Fatalf("bucket sizes: pending=%d confirmed=%d completed=%d",
			len(summary.Pending), len(summary.Confirmed), len(summary.Completed))
	}
	// riverstone (confirmed twice) and fernleaf (completed) helped; bluejay
	// is still pending and does not count.
	if summary.Stats.StudentsHelped != 2 {
		t.Fatalf("studentsHelped: got %d, want 2", summary.Stats.StudentsHelped)
	}
	if summary.Stats.HoursDedicated != 1 {
		t.Fatalf("hoursDedicated: got %d, want 1", summary.Stats.HoursDedicated)
	}
}

func TestDashboardOrdering(t *testing.T) {
	svc, _, _, _ := newTestService()

	for _, date := range []string{"2026-09-17", "2026-09-15", "2026-09-16"} {
		appt := book(t, svc, "c1", "bluejay", date, "10:00 AM")
		if _, err := svc.Approve(context.Background(), appt.ID); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
		if _, err := svc.Complete(context.Background(), appt.ID); err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
	}
	for _, date := range []string{"2026-09-20", "2026-09-18", "2026-09-19"} {
		book(t, svc, "c1", "bluejay", date, "11:00 AM")
	}

	summary, err := svc.Dashboard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	wantCompleted := []string{"2026-09-17", "2026-09-16", "2026-09-15"}
	for i, appt := range summary.Completed {
		if appt.Date != wantCompleted[i] {
			t.Fatalf("history[%d]: got %s, want %s (most recent first)", i, appt.Date, wantCompleted[i])
		}
	}
	wantPending := []string{"2026-09-18", "2026-09-19", "2026-09-20"}
	for i, appt := range summary.Pending {
		if appt.Date != wantPending[i] {
			t.Fatalf("pending[%d]: got %s, want %s (ascending)", i, appt.Date, wantPending[i])
		}
	}
}

func TestDashboardValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.Dashboard(context.Background(), ""); !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestStudentAppointments(t *testing.T) {
	svc, _, _, _ := newTestService()

	book(t, svc, "c1", "bluejay", "2026-09-16", "10:00 AM")
	book(t, svc, "c2", "bluejay", "2026-09-15", "10:00 AM")
	book(t, svc, "c1", "riverstone", "2026-09-15", "11:00 AM")

	appts, err := svc.StudentAppointments(context.Background(), "bluejay")
	if err != nil {
		t.Fatalf("StudentAppointments failed: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	if appts[0].Date != "2026-09-15" || appts[1].Date != "2026-09-16" {
		t.Fatalf("expected ascending dates, got %s then %s", appts[0].Date, appts[1].Date)
	}

	if _, err := svc.StudentAppointments(context.Background(), ""); !IsValidation(err) {
		t.Fatalf("expected ValidationError for empty nickname, got %v", err)
	}

	none, err := svc.StudentAppointments(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("StudentAppointments failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty slice for unknown nickname, got %v", none)
	}
}
