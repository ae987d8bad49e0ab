package handlers

import "github.com/go-redis/redis/v8"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// AuthCache backs the counselor session middleware.
	AuthCache *redis.Client

	Booking   *BookingHandler
	Dashboard *DashboardHandler
	Counselor *CounselorHandler
	Student   *StudentHandler
	Urgent    *UrgentHandler
	Assistant *AssistantHandler
}
