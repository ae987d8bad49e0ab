package models

// Counselor represents a bookable counselor profile.
type Counselor struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Specialty    string   `bson:"specialty" json:"specialty"`
	Bio          string   `bson:"bio" json:"bio"`
	Languages    []string `bson:"languages" json:"languages"`
	Vibe         string   `bson:"vibe" json:"vibe"`                 // e.g. "Gentle", "Direct", "Calm"
	SupportStyle string   `bson:"supportStyle" json:"supportStyle"` // "gentle", "practical" or "clinical"
	Image        string   `bson:"image" json:"image"`
	IsOnline     bool     `bson:"isOnline" json:"isOnline"` // Single writer: the counselor themselves
}
