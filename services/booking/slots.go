package booking

import (
	"context"

	"campusminds/models"
)

// GetSlots marks each catalog label as booked when an active appointment
// occupies it. Purely a read; result order and length mirror the catalog.
func (s *DefaultBookingService) GetSlots(ctx context.Context, counselorID, date string) ([]models.SlotStatus, error) {
	if counselorID == "" {
		return nil, ValidationError{Field: "counselorId", Reason: "must not be empty"}
	}
	if _, err := parseDate(date); err != nil {
		return nil, ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	active, err := s.Repo.ListActive(ctx, counselorID, date)
	if err != nil {
		return nil, StorageError{Err: err}
	}

	taken := make(map[string]struct{}, len(active))
	for _, appt := range active {
		taken[appt.TimeSlot] = struct{}{}
	}

	labels := s.Catalog.Labels()
	slots := make([]models.SlotStatus, 0, len(labels))
	for _, label := range labels {
		_, isBooked := taken[label]
		slots = append(slots, models.SlotStatus{Time: label, IsBooked: isBooked})
	}
	return slots, nil
}
