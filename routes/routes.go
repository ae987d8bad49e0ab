package routes

import (
	"net/http"
	"time"

	"campusminds/handlers"
	"campusminds/middleware"
	"campusminds/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the student-facing slot and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/slots", hb.Booking.GetSlotsHandler)
		api.POST("/book", hb.Booking.CreateBookingHandler)
	}
}

// RegisterCounselorRoutes registers the counselor directory, login, and the
// appointment lifecycle endpoints.
func RegisterCounselorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/counselors")
	{
		api.POST("/login", hb.Counselor.LoginHandler)
		api.GET("", hb.Counselor.ListHandler)
		api.GET("/me", hb.Counselor.GetMeHandler)

		// Lifecycle and status changes require an authenticated counselor.
		api.Use(middleware.JWTAuthCounselorMiddleware(hb.AuthCache))
		api.PUT("/status", hb.Counselor.UpdateStatusHandler)
		api.PUT("/approve/:id", hb.Booking.ApproveAppointmentHandler)
		api.PUT("/complete/:id", hb.Booking.CompleteAppointmentHandler)
		api.DELETE("/decline/:id", hb.Booking.DeclineAppointmentHandler)
	}
}

// RegisterStudentRoutes registers profile and student session endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.POST("", hb.Student.UpsertProfileHandler)
		api.POST("/login", hb.Student.LoginHandler)
		api.GET("/appointments", hb.Booking.StudentAppointmentsHandler)
		api.GET("/:nickname", hb.Student.GetProfileHandler)
	}
}

// RegisterDashboardRoutes registers the counselor dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthCounselorMiddleware(hb.AuthCache))
		api.GET("", hb.Dashboard.GetDashboardHandler)
	}
}

// RegisterUrgentRoutes registers the urgent-request flow. Submission is open
// to students; triage is counselor-only.
func RegisterUrgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/urgent")
	{
		api.POST("", hb.Urgent.SubmitHandler)

		api.Use(middleware.JWTAuthCounselorMiddleware(hb.AuthCache))
		api.GET("", hb.Urgent.ListHandler)
		api.POST("/accept/:id", hb.Urgent.AcceptHandler)
		api.DELETE("/:id", hb.Urgent.DeclineHandler)
	}
}

// RegisterAssistantRoutes registers the support chat endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", hb.Assistant.ChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background monitor snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCounselorRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterUrgentRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
}
