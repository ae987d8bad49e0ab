package models

// ReminderPayload is the task body queued when a session is confirmed, so the
// reminder worker can surface it before the session starts.
type ReminderPayload struct {
	AppointmentID   string `json:"appointmentId"`
	CounselorName   string `json:"counselorName"`
	StudentNickname string `json:"studentNickname"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	MeetingLink     string `json:"meetingLink"`
}
