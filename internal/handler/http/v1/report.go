package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a threat report
// @Description Submit a new environmental threat report. Requires bearer token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "createReport").WithField("user_id", user.ID)

	var input CreateReportRequest
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

	model := DTOToReportModel(input)
	if err := h.reportService.CreateReport(c.Request.Context(), model, user.ID); err != nil {
		respondServiceError(c, log, err, "failed to create report")
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(model))
}

// @Summary Get a list of reports
// @Description Get a paginated list of threat reports, newest first
// @Tags Reports
// @Accept json
// @Produce json
// @Param skip query int false "Number of reports to skip" default(0)
// @Param limit query int false "Number of reports to return" default(100)
// @Success 200 {array} ReportResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	reports, err := h.reportService.ListReports(c.Request.Context(), skip, limit)
	if err != nil {
		respondServiceError(c, log, err, "failed to list reports")
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single threat report by its ID
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "failed to get report")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get my reports
// @Description Get all reports submitted by the authenticated account. Requires bearer token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/user/my-reports [get]
func (h *Handler) listMyReports(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "listMyReports").WithField("user_id", user.ID)

	reports, err := h.reportService.ListMyReports(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, log, err, "failed to list reports")
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Validate a report
// @Description Mark a pending report as validated, awarding the reporter points. Requires sentinel bearer token.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Sentinel access required"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already validated"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/validate [put]
func (h *Handler) validateReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "validateReport").WithField("id", id)

	if err := h.reportService.ValidateReport(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err, "failed to validate report")
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err, "failed to get report")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}
