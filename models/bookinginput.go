package models

// BookingRequest carries the fields a student submits to reserve a slot.
type BookingRequest struct {
	CounselorID     string `json:"counselorId"`
	CounselorName   string `json:"counselorName"`
	StudentNickname string `json:"studentNickname"`
	StudentEmail    string `json:"studentEmail"`
	StudentPhone    string `json:"studentPhone"`
	StudentAge      int    `json:"studentAge"`
	StudentGender   string `json:"studentGender"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
}
