package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/auth"
	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository defines the contract for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	AddPoints(ctx context.Context, userID int64, delta int) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

// UserService defines the contract for account business logic.
type UserService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (*models.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
	AwardPoints(ctx context.Context, userID int64, delta int) (int, error)
}

type userService struct {
	repo   UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account with a hashed password.
func (s *userService) Register(ctx context.Context, user *models.User, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
		"email":   user.Email,
	})
	log.Info("Attempting to register a new user")

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	user.HashedPassword = hash
	user.IsActive = true
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Warn("Email already registered")
			return fmt.Errorf("service: email %s already registered: %w", user.Email, err)
		}
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not register user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// Login verifies credentials and issues an access token.
func (s *userService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting login")

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login with unknown email")
			return "", nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return "", nil, fmt.Errorf("service: could not login: %w", err)
	}

	if !user.IsActive || !auth.CheckPassword(user.HashedPassword, password) {
		log.Warn("Login rejected")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return "", nil, fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("Login successful")
	return token, user, nil
}

// GetByEmail returns the account bound to an email. Used by the auth middleware
// to resolve the token subject.
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the allowlisted fields to the caller's account.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateProfile",
		"user_id": userID,
	})
	log.Info("Attempting to update user profile")

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return nil, fmt.Errorf("service: user %d not found for update: %w", userID, err)
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Password != nil {
		hash, err := auth.HashPassword(*update.Password)
		if err != nil {
			log.WithError(err).Error("Failed to hash new password")
			return nil, fmt.Errorf("service: could not update profile: %w", err)
		}
		user.HashedPassword = hash
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("User profile updated successfully")
	return user, nil
}

// Leaderboard returns active sentinels ordered by points descending. Ties keep
// insertion order.
func (s *userService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Leaderboard",
		"limit":   limit,
	})
	log.Info("Fetching leaderboard")

	users, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch leaderboard from repository")
		return nil, fmt.Errorf("service: could not fetch leaderboard: %w", err)
	}

	log.WithField("count", len(users)).Info("Leaderboard fetched successfully")
	return users, nil
}

// AwardPoints adds delta to the account's points and returns the new total.
// Totals are clamped at zero; a negative delta can never drive points negative.
func (s *userService) AwardPoints(ctx context.Context, userID int64, delta int) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "AwardPoints",
		"user_id": userID,
		"delta":   delta,
	})
	log.Info("Awarding points")

	total, err := s.repo.AddPoints(ctx, userID, delta)
	if err != nil {
		log.WithError(err).Error("Failed to award points in repository")
		return 0, fmt.Errorf("service: could not award points: %w", err)
	}

	log.WithField("total_points", total).Info("Points awarded successfully")
	return total, nil
}
