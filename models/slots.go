package models

// SlotStatus is one entry of the availability view for a (counselor, date)
// pair: a catalog label and whether an active appointment occupies it.
type SlotStatus struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`
}
