package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authRequired := AuthMiddleware(h.tokens, h.userService, h.logger)
	sentinelOnly := SentinelOnlyMiddleware(h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	users := api.Group("/users")
	{
		users.GET("/profile", authRequired, h.getProfile)
		users.PUT("/profile", authRequired, h.updateProfile)
		users.GET("/leaderboard", h.leaderboard)
		users.PUT("/points", authRequired, h.awardPoints)
	}

	reports := api.Group("/reports")
	{
		reports.POST("", authRequired, h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.GET("/user/my-reports", authRequired, h.listMyReports)
		reports.PUT("/:id/validate", authRequired, sentinelOnly, h.validateReport)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", authRequired, sentinelOnly, h.createAlert)
		alerts.PUT("/:id/resolve", authRequired, sentinelOnly, h.resolveAlert)
	}

	zones := api.Group("/zones")
	{
		zones.POST("", authRequired, sentinelOnly, h.createZone)
		zones.GET("", h.listZones)
		zones.GET("/:id", h.getZone)
		zones.GET("/high-risk/count", h.highRiskZoneCount)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", h.dashboardStats)
		dashboard.GET("/impact", h.impactSeries)
	}

	ecosystem := api.Group("/ecosystem")
	{
		ecosystem.GET("/health-metrics", h.ecosystemHealth)
		ecosystem.GET("/environmental-trends", h.environmentalTrends)
		ecosystem.GET("/biodiversity-data", h.biodiversityData)
		ecosystem.GET("/monitoring-stations", h.monitoringStations)
		ecosystem.GET("/species-trends", h.speciesTrends)
	}

	conservation := api.Group("/conservation")
	{
		conservation.GET("/stats", h.conservationStats)
		conservation.GET("/projects", h.conservationProjects)
		conservation.GET("/updates", h.conservationUpdates)
	}

	community := api.Group("/community")
	{
		community.GET("/stats", h.communityStats)
		community.GET("/volunteer-opportunities", h.volunteerOpportunities)
		community.GET("/local-groups", h.localGroups)
		community.GET("/success-stories", h.successStories)
		community.GET("/volunteer-of-month", h.volunteerOfMonth)
	}

	events := api.Group("/events")
	{
		events.GET("/stats", h.eventsStats)
		events.GET("/upcoming", h.upcomingEvents)
		events.GET("/past-highlights", h.pastHighlights)
		events.GET("/categories", h.eventCategories)
	}

	api.GET("/system/health", h.healthCheck)
}
