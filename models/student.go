package models

import "time"

// Student is the anonymous profile of a requester, identified across sessions
// by a unique nickname rather than an account.
type Student struct {
	Nickname  string    `bson:"nickname" json:"nickname"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Age       int       `bson:"age" json:"age"`
	Gender    string    `bson:"gender" json:"gender"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
