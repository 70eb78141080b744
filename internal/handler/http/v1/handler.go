package v1

import (
	"errors"
	"net/http"

	"github.com/diyapatel028/Mangrove-sentinals/internal/auth"
	"github.com/diyapatel028/Mangrove-sentinals/internal/config"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	userService   service.UserService
	reportService service.ReportService
	alertService  service.AlertService
	zoneService   service.ZoneService
	statsService  service.StatsService
	tokens        *auth.TokenManager
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(
	userService service.UserService,
	reportService service.ReportService,
	alertService service.AlertService,
	zoneService service.ZoneService,
	statsService service.StatsService,
	tokens *auth.TokenManager,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		userService:   userService,
		reportService: reportService,
		alertService:  alertService,
		zoneService:   zoneService,
		statsService:  statsService,
		tokens:        tokens,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// respondServiceError maps domain sentinel errors onto HTTP statuses.
func respondServiceError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyValidated):
		c.JSON(http.StatusConflict, gin.H{"error": "report already validated"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
