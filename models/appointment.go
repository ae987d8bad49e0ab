package models

import "time"

// Appointment status values. Pending and Confirmed count against slot
// uniqueness; Completed and Cancelled free the slot and never transition again.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment represents a reservation of one time slot with a counselor.
// Counselor name and the student profile are copied at booking time so later
// profile edits never alter historical records.
type Appointment struct {
	ID            string `bson:"id" json:"id"`                       // Unique appointment identifier (UUID)
	CounselorID   string `bson:"counselorId" json:"counselorId"`     // Counselor who was booked
	CounselorName string `bson:"counselorName" json:"counselorName"` // Snapshot of the counselor display name

	// Student profile snapshot (anonymous, keyed by nickname).
	StudentNickname string `bson:"studentNickname" json:"studentNickname"`
	StudentEmail    string `bson:"studentEmail" json:"studentEmail"`
	StudentPhone    string `bson:"studentPhone,omitempty" json:"studentPhone,omitempty"`
	StudentAge      int    `bson:"studentAge" json:"studentAge"`
	StudentGender   string `bson:"studentGender" json:"studentGender"`

	// Booking logistics.
	Date     string `bson:"date" json:"date"`         // Calendar date in "YYYY-MM-DD" format
	TimeSlot string `bson:"timeSlot" json:"timeSlot"` // Catalog label, e.g. "10:00 AM"

	Status      string    `bson:"status" json:"status"`
	MeetingLink string    `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"` // Set once Confirmed
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// IsActive reports whether the appointment currently occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// ActiveStatuses lists the statuses that count against slot uniqueness.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}
