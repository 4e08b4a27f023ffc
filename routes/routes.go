package routes

import (
	"time"

	"raisedesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInvestorRoutes registers investor CRUD and the match endpoint.
func RegisterInvestorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/investors")
	{
		api.GET("", hb.Investors.ListInvestorsHandler)
		api.POST("", hb.Investors.CreateInvestorHandler)
		api.GET("/:id", hb.Investors.GetInvestorHandler)
		api.PUT("/:id", hb.Investors.UpdateInvestorHandler)
		api.DELETE("/:id", hb.Investors.DeleteInvestorHandler)
		api.POST("/:id/matches", hb.Investors.MatchesHandler)
	}
}

func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.GET("", hb.Clients.ListClientsHandler)
		api.POST("", hb.Clients.CreateClientHandler)
		api.GET("/:id", hb.Clients.GetClientHandler)
		api.PUT("/:id", hb.Clients.UpdateClientHandler)
		api.DELETE("/:id", hb.Clients.DeleteClientHandler)
	}
}

// RegisterTaskRoutes registers the tasks board.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	{
		api.GET("/board", hb.Board.GetBoardHandler)
		api.POST("", hb.Board.CreateTaskHandler)
		api.PATCH("/:id", hb.Board.UpdateTaskHandler)
		api.POST("/:id/move", hb.Board.MoveTaskHandler)
		api.DELETE("/:id", hb.Board.DeleteTaskHandler)
	}
}

func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.GET("", hb.Meetings.ListMeetingsHandler)
		api.GET("/upcoming", hb.Meetings.UpcomingMeetingsHandler)
		api.POST("", hb.Meetings.ScheduleMeetingHandler)
		api.POST("/:id/cancel", hb.Meetings.CancelMeetingHandler)
		api.POST("/:id/complete", hb.Meetings.CompleteMeetingHandler)
	}
}

// RegisterOnboardingRoutes registers the fund and startup questionnaires.
// POST /start/:kind opens a submission; the id-keyed routes drive it.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.GET("/steps/:kind", hb.Onboarding.StepsHandler)
		api.POST("/start/:kind", hb.Onboarding.StartHandler)
		api.GET("/:id", hb.Onboarding.GetHandler)
		api.PATCH("/:id/fields", hb.Onboarding.SetFieldsHandler)
		api.POST("/:id/next", hb.Onboarding.NextHandler)
		api.POST("/:id/prev", hb.Onboarding.PrevHandler)
		api.POST("/:id/submit", hb.Onboarding.SubmitHandler)
		api.POST("/:id/promote", hb.Onboarding.PromoteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsCfg := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	RegisterInvestorRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterOnboardingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
