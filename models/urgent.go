package models

import "time"

// UrgentRequest is a student's plea for an immediate session, held until a
// counselor accepts or declines it.
type UrgentRequest struct {
	ID        string    `bson:"id" json:"id"`
	Student   string    `bson:"student" json:"student"` // Student nickname
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
