package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Register a zone
// @Description Register a new monitored conservation zone. Requires sentinel bearer token.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Sentinel access required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err, "failed to create zone")
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary Get a list of zones
// @Description Get a paginated list of monitored zones
// @Tags Zones
// @Accept json
// @Produce json
// @Param skip query int false "Number of zones to skip" default(0)
// @Param limit query int false "Number of zones to return" default(100)
// @Success 200 {array} ZoneResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	zones, err := h.zoneService.ListZones(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, log, err, "failed to list zones")
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get zone by ID
// @Description Get a single zone by its ID
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path int true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "failed to get zone")
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(zone))
}

// @Summary Count high-risk zones
// @Description Get the number of zones with high risk level
// @Tags Zones
// @Accept json
// @Produce json
// @Success 200 {object} HighRiskCountResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/high-risk/count [get]
func (h *Handler) highRiskZoneCount(c *gin.Context) {
	log := h.logger.WithField("method", "highRiskZoneCount")

	count, err := h.zoneService.HighRiskCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err, "failed to count high risk zones")
		return
	}
	c.JSON(http.StatusOK, HighRiskCountResponse{HighRiskZones: count})
}
