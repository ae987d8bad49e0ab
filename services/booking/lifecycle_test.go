package booking

import (
	"context"
	"strings"
	"sync"
	"testing"

	"campusminds/models"
)

func bookOne(t *testing.T, svc *DefaultBookingService) *models.Appointment {
	t.Helper()
	appt, err := svc.Book(context.Background(), validRequest(), BookingOptions{})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	return appt
}

func TestApproveConfirmsAndAttachesLink(t *testing.T) {
	svc, _, _, scheduler := newTestService()
	appt := bookOne(t, svc)

	confirmed, err := svc.Approve(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Fatalf("expected %q, got %q", models.StatusConfirmed, confirmed.Status)
	}
	if confirmed.MeetingLink != MeetingLinkFor(appt.ID) {
		t.Fatalf("unexpected meeting link %q", confirmed.MeetingLink)
	}
	if !strings.HasPrefix(confirmed.MeetingLink, MeetingLinkPrefix) {
		t.Fatalf("meeting link %q lacks prefix %q", confirmed.MeetingLink, MeetingLinkPrefix)
	}
	if len(scheduler.payloads) != 1 {
		t.Fatalf("expected one reminder enqueued, got %d", len(scheduler.payloads))
	}
	if scheduler.payloads[0].MeetingLink != confirmed.MeetingLink {
		t.Fatalf("reminder payload carries wrong link %q", scheduler.payloads[0].MeetingLink)
	}
}

func TestApproveIsNotIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService()
	appt := bookOne(t, svc)

	first, err := svc.Approve(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("first Approve failed: %v", err)
	}

	_, err = svc.Approve(context.Background(), appt.ID)
	if !IsIllegalState(err) {
		t.Fatalf("expected IllegalStateError on second approve, got %v", err)
	}

	// The stored record still carries the first approval's link.
	stored, err := svc.Repo.GetByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.MeetingLink != first.MeetingLink {
		t.Fatalf("meeting link changed on losing approve: %q vs %q", stored.MeetingLink, first.MeetingLink)
	}
}

func TestApproveConcurrentSingleWinner(t *testing.T) {
	svc, _, _, scheduler := newTestService()
	appt := bookOne(t, svc)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Approve(context.Background(), appt.ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else if !IsIllegalState(err) {
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winning approve, got %d", winners)
	}
	if len(scheduler.payloads) != 1 {
		t.Fatalf("expected one reminder, got %d", len(scheduler.payloads))
	}
}

func TestApproveUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.Approve(context.Background(), "missing"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestApproveSurvivesReminderFailure(t *testing.T) {
	svc, _, _, scheduler := newTestService()
	scheduler.err = context.DeadlineExceeded
	appt := bookOne(t, svc)

	confirmed, err := svc.Approve(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("approval must not fail on reminder enqueue error, got %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Fatalf("expected %q, got %q", models.StatusConfirmed, confirmed.Status)
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	svc, _, _, _ := newTestService()
	appt := bookOne(t, svc)

	// Pending -> Completed is not a legal transition.
	if _, err := svc.Complete(context.Background(), appt.ID); !IsIllegalState(err) {
		t.Fatalf("expected IllegalStateError completing a pending appointment, got %v", err)
	}

	if _, err := svc.Approve(context.Background(), appt.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	done, err := svc.Complete(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.Status != models.StatusCompleted {
		t.Fatalf("expected %q, got %q", models.StatusCompleted, done.Status)
	}
	if done.MeetingLink != MeetingLinkFor(appt.ID) {
		t.Fatalf("completion must preserve the meeting link, got %q", done.MeetingLink)
	}

	// Terminal: no further transitions.
	if _, err := svc.Complete(context.Background(), appt.ID); !IsIllegalState(err) {
		t.Fatalf("expected IllegalStateError on double complete, got %v", err)
	}
}

func TestDeclineRemovesPendingAndFreesSlot(t *testing.T) {
	svc, _, _, _ := newTestService()
	appt := bookOne(t, svc)

	if err := svc.Decline(context.Background(), appt.ID); err != nil {
		t.Fatalf("Decline failed: %v", err)
	}
	if _, err := svc.Repo.GetByID(context.Background(), appt.ID); err == nil {
		t.Fatalf("declined appointment must be gone")
	}

	// The slot is immediately bookable again.
	if _, err := svc.Book(context.Background(), validRequest(), BookingOptions{}); err != nil {
		t.Fatalf("rebooking a declined slot failed: %v", err)
	}
}

func TestDeclineRejectsNonPending(t *testing.T) {
	svc, _, _, _ := newTestService()
	appt := bookOne(t, svc)
	if _, err := svc.Approve(context.Background(), appt.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if err := svc.Decline(context.Background(), appt.ID); !IsIllegalState(err) {
		t.Fatalf("expected IllegalStateError declining a confirmed appointment, got %v", err)
	}
	if err := svc.Decline(context.Background(), "missing"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

// Full lifecycle: book, approve, complete, then the slot opens for the next
// student while history keeps the completed record.
func TestLifecycleEndToEnd(t *testing.T) {
	svc, _, _, _ := newTestService()
	appt := bookOne(t, svc)

	if _, err := svc.Approve(context.Background(), appt.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if _, err := svc.Complete(context.Background(), appt.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	next := validRequest()
	next.StudentNickname = "riverstone"
	next.StudentEmail = "riverstone@campus.edu"
	if _, err := svc.Book(context.Background(), next, BookingOptions{}); err != nil {
		t.Fatalf("rebooking after completion failed: %v", err)
	}

	summary, err := svc.Dashboard(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(summary.Completed) != 1 || len(summary.Pending) != 1 {
		t.Fatalf("expected 1 completed and 1 pending, got %d and %d",
			len(summary.Completed), len(summary.Pending))
	}
}
