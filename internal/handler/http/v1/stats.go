package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Aggregation endpoints serve domain summary types directly. They carry no
// caller input beyond the route, so there is nothing to bind or validate.

// @Summary Get dashboard statistics
// @Description Get the cached dashboard counter snapshot
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) dashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardStats")

	stats, err := h.statsService.DashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get impact series
// @Description Get the seven-month validated report impact series
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {array} models.ImpactEntry
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/impact [get]
func (h *Handler) impactSeries(c *gin.Context) {
	log := h.logger.WithField("method", "impactSeries")

	series, err := h.statsService.ImpactSeries(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get impact series")
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary Get ecosystem health metrics
// @Description Get derived water quality, species count, forest cover and health score
// @Tags Ecosystem
// @Accept json
// @Produce json
// @Success 200 {object} models.EcosystemHealth
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ecosystem/health-metrics [get]
func (h *Handler) ecosystemHealth(c *gin.Context) {
	log := h.logger.WithField("method", "ecosystemHealth")

	health, err := h.statsService.EcosystemHealth(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get health metrics")
		return
	}
	c.JSON(http.StatusOK, health)
}

// @Summary Get environmental trends
// @Description Get water and air quality series over seven monthly buckets
// @Tags Ecosystem
// @Accept json
// @Produce json
// @Success 200 {object} models.EnvironmentalTrends
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ecosystem/environmental-trends [get]
func (h *Handler) environmentalTrends(c *gin.Context) {
	log := h.logger.WithField("method", "environmentalTrends")

	trends, err := h.statsService.EnvironmentalTrends(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get environmental trends")
		return
	}
	c.JSON(http.StatusOK, trends)
}

// @Summary Get biodiversity data
// @Description Get the species category distribution
// @Tags Ecosystem
// @Accept json
// @Produce json
// @Success 200 {object} models.BiodiversityData
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ecosystem/biodiversity-data [get]
func (h *Handler) biodiversityData(c *gin.Context) {
	log := h.logger.WithField("method", "biodiversityData")

	data, err := h.statsService.BiodiversityData(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get biodiversity data")
		return
	}
	c.JSON(http.StatusOK, data)
}

// @Summary Get monitoring stations
// @Description Get monitoring station records derived from zones
// @Tags Ecosystem
// @Accept json
// @Produce json
// @Success 200 {array} models.MonitoringStation
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ecosystem/monitoring-stations [get]
func (h *Handler) monitoringStations(c *gin.Context) {
	log := h.logger.WithField("method", "monitoringStations")

	stations, err := h.statsService.MonitoringStations(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get monitoring stations")
		return
	}
	c.JSON(http.StatusOK, stations)
}

// @Summary Get species trends
// @Description Get per-category species population trends
// @Tags Ecosystem
// @Accept json
// @Produce json
// @Success 200 {object} models.SpeciesTrends
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ecosystem/species-trends [get]
func (h *Handler) speciesTrends(c *gin.Context) {
	log := h.logger.WithField("method", "speciesTrends")

	trends, err := h.statsService.SpeciesTrends(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get species trends")
		return
	}
	c.JSON(http.StatusOK, trends)
}

// @Summary Get conservation statistics
// @Description Get conservation output estimated from validated reports
// @Tags Conservation
// @Accept json
// @Produce json
// @Success 200 {object} models.ConservationStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /conservation/stats [get]
func (h *Handler) conservationStats(c *gin.Context) {
	log := h.logger.WithField("method", "conservationStats")

	stats, err := h.statsService.ConservationStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get conservation stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get conservation projects
// @Description Get per-location project summaries from report activity
// @Tags Conservation
// @Accept json
// @Produce json
// @Success 200 {array} models.ConservationProject
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /conservation/projects [get]
func (h *Handler) conservationProjects(c *gin.Context) {
	log := h.logger.WithField("method", "conservationProjects")

	projects, err := h.statsService.ConservationProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get conservation projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary Get conservation updates
// @Description Get recent update lines from validated reports
// @Tags Conservation
// @Accept json
// @Produce json
// @Success 200 {array} models.ConservationUpdate
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /conservation/updates [get]
func (h *Handler) conservationUpdates(c *gin.Context) {
	log := h.logger.WithField("method", "conservationUpdates")

	updates, err := h.statsService.ConservationUpdates(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get conservation updates")
		return
	}
	c.JSON(http.StatusOK, updates)
}

// @Summary Get community statistics
// @Description Get community participation totals
// @Tags Community
// @Accept json
// @Produce json
// @Success 200 {object} models.CommunityStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /community/stats [get]
func (h *Handler) communityStats(c *gin.Context) {
	log := h.logger.WithField("method", "communityStats")

	stats, err := h.statsService.CommunityStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get community stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get volunteer opportunities
// @Description Get scheduled volunteer opportunities at recent report locations
// @Tags Community
// @Accept json
// @Produce json
// @Success 200 {array} models.VolunteerOpportunity
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /community/volunteer-opportunities [get]
func (h *Handler) volunteerOpportunities(c *gin.Context) {
	log := h.logger.WithField("method", "volunteerOpportunities")

	opportunities, err := h.statsService.VolunteerOpportunities(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get volunteer opportunities")
		return
	}
	c.JSON(http.StatusOK, opportunities)
}

// @Summary Get local groups
// @Description Get the largest local sentinel groups by location
// @Tags Community
// @Accept json
// @Produce json
// @Success 200 {array} models.LocalGroup
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /community/local-groups [get]
func (h *Handler) localGroups(c *gin.Context) {
	log := h.logger.WithField("method", "localGroups")

	groups, err := h.statsService.LocalGroups(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get local groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// @Summary Get success stories
// @Description Get success stories customized from recent validated reports
// @Tags Community
// @Accept json
// @Produce json
// @Success 200 {array} models.SuccessStory
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /community/success-stories [get]
func (h *Handler) successStories(c *gin.Context) {
	log := h.logger.WithField("method", "successStories")

	stories, err := h.statsService.SuccessStories(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get success stories")
		return
	}
	c.JSON(http.StatusOK, stories)
}

// @Summary Get volunteer of the month
// @Description Get the featured top-points volunteer
// @Tags Community
// @Accept json
// @Produce json
// @Success 200 {object} models.VolunteerOfMonth
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /community/volunteer-of-month [get]
func (h *Handler) volunteerOfMonth(c *gin.Context) {
	log := h.logger.WithField("method", "volunteerOfMonth")

	volunteer, err := h.statsService.VolunteerOfMonth(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get volunteer of the month")
		return
	}
	c.JSON(http.StatusOK, volunteer)
}

// @Summary Get event statistics
// @Description Get event activity estimated from account and report counts
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} models.EventsStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/stats [get]
func (h *Handler) eventsStats(c *gin.Context) {
	log := h.logger.WithField("method", "eventsStats")

	stats, err := h.statsService.EventsStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get events stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get upcoming events
// @Description Get upcoming events scheduled at recent alert and report locations
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {array} models.UpcomingEvent
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/upcoming [get]
func (h *Handler) upcomingEvents(c *gin.Context) {
	log := h.logger.WithField("method", "upcomingEvents")

	events, err := h.statsService.UpcomingEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get upcoming events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get past event highlights
// @Description Get highlights built from recent validated reports
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {array} models.PastHighlight
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/past-highlights [get]
func (h *Handler) pastHighlights(c *gin.Context) {
	log := h.logger.WithField("method", "pastHighlights")

	highlights, err := h.statsService.PastHighlights(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get past highlights")
		return
	}
	c.JSON(http.StatusOK, highlights)
}

// @Summary Get event categories
// @Description Get the fixed event categories with activity-based counts
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {array} models.EventCategory
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/categories [get]
func (h *Handler) eventCategories(c *gin.Context) {
	log := h.logger.WithField("method", "eventCategories")

	categories, err := h.statsService.EventCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to get event categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
