package v1

import (
	"net/http"
	"strconv"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary Register a new account
// @Description Create a new community member account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

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

	user := &models.User{
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Location: input.Location,
	}
	if err := h.userService.Register(c.Request.Context(), user, input.Password); err != nil {
		respondServiceError(c, log, err, "failed to register user")
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Login
// @Description Verify credentials and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	token, user, err := h.userService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondServiceError(c, log, err, "failed to login")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ModelToUserResponse(user),
	})
}

// @Summary Get current profile
// @Description Get the authenticated account. Requires bearer token.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update current profile
// @Description Update the allowlisted profile fields of the authenticated account. Requires bearer token.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "updateProfile").WithField("user_id", user.ID)

	var input UpdateProfileRequest
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

	updated, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, models.ProfileUpdate{
		FullName: input.FullName,
		Phone:    input.Phone,
		Location: input.Location,
		Password: input.Password,
	})
	if err != nil {
		respondServiceError(c, log, err, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(updated))
}

// @Summary Get the leaderboard
// @Description Get active sentinels ordered by points descending
// @Tags Users
// @Accept json
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {array} UserResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/leaderboard [get]
func (h *Handler) leaderboard(c *gin.Context) {
	log := h.logger.WithField("method", "leaderboard")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.userService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, log, err, "failed to fetch leaderboard")
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Award points
// @Description Add a point delta to the authenticated account. Totals never go below zero. Requires bearer token.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param points body AwardPointsRequest true "Point award request"
// @Success 200 {object} PointsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/points [put]
func (h *Handler) awardPoints(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	log := h.logger.WithField("method", "awardPoints").WithField("user_id", user.ID)

	var input AwardPointsRequest
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

	total, err := h.userService.AwardPoints(c.Request.Context(), user.ID, input.Points)
	if err != nil {
		respondServiceError(c, log, err, "failed to award points")
		return
	}
	c.JSON(http.StatusOK, PointsResponse{TotalPoints: total})
}
