package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diyapatel028/Mangrove-sentinals/internal/auth"
	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserService builds a service instance with a mocked repository and a
// real token manager.
func newTestUserService(t *testing.T) (*userService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	service := NewUserService(repoMock, tokens, logger)
	return service.(*userService), repoMock
}

func TestRegister_Success(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{
		Email:    "asha@example.com",
		FullName: "Asha Nair",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			// The service must hash the password and activate the account
			// before it reaches the repository.
			assert.NotEmpty(t, u.HashedPassword)
			assert.NotEqual(t, "secret-password", u.HashedPassword)
			assert.True(t, u.IsActive)
			u.ID = 1
			return nil
		}).Times(1)

	err := service.Register(ctx, user, "secret-password")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "secret-password"))
}

func TestRegister_EmailTaken(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{Email: "asha@example.com"}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(ErrConflict).
		Times(1)

	err := service.Register(ctx, user, "secret-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorContains(t, err, "already registered")
}

func TestLogin_Success(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	storedUser := &models.User{
		ID:             1,
		Email:          "asha@example.com",
		HashedPassword: hash,
		IsActive:       true,
	}

	repoMock.EXPECT().
		GetByEmail(ctx, "asha@example.com").
		Return(storedUser, nil).
		Times(1)

	token, user, err := service.Login(ctx, "asha@example.com", "secret-password")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, storedUser, user)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	storedUser := &models.User{
		ID:             1,
		Email:          "asha@example.com",
		HashedPassword: hash,
		IsActive:       true,
	}

	repoMock.EXPECT().
		GetByEmail(ctx, "asha@example.com").
		Return(storedUser, nil).
		Times(1)

	token, user, err := service.Login(ctx, "asha@example.com", "wrong-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetByEmail(ctx, "nobody@example.com").
		Return(nil, ErrNotFound).
		Times(1)

	token, user, err := service.Login(ctx, "nobody@example.com", "secret-password")

	// Unknown email and wrong password are indistinguishable to the caller.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLogin_InactiveAccount(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	storedUser := &models.User{
		ID:             1,
		Email:          "asha@example.com",
		HashedPassword: hash,
		IsActive:       false,
	}

	repoMock.EXPECT().
		GetByEmail(ctx, "asha@example.com").
		Return(storedUser, nil).
		Times(1)

	_, _, err = service.Login(ctx, "asha@example.com", "secret-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_Success(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	existing := &models.User{
		ID:       1,
		Email:    "asha@example.com",
		FullName: "Asha Nair",
		Location: "Kochi, Kerala",
	}
	newName := "Asha N."

	repoMock.EXPECT().GetByID(ctx, int64(1)).Return(existing, nil).Times(1)
	repoMock.EXPECT().
		UpdateProfile(ctx, gomock.Any()).
		Do(func(ctx context.Context, u *models.User) {
			assert.Equal(t, "Asha N.", u.FullName)
			// Fields not present in the update stay untouched.
			assert.Equal(t, "Kochi, Kerala", u.Location)
		}).Return(nil).Times(1)

	user, err := service.UpdateProfile(ctx, 1, models.ProfileUpdate{FullName: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Asha N.", user.FullName)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(42)).Return(nil, ErrNotFound).Times(1)

	user, err := service.UpdateProfile(ctx, 42, models.ProfileUpdate{})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "not found for update")
}

func TestLeaderboard_ClampsLimit(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	expected := []*models.User{
		{ID: 1, FullName: "Asha Nair", Points: 120},
		{ID: 2, FullName: "Ravi Kumar", Points: 80},
	}

	// Out-of-range limits fall back to the default of 10.
	repoMock.EXPECT().Leaderboard(ctx, 10).Return(expected, nil).Times(1)

	users, err := service.Leaderboard(ctx, 500)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAwardPoints_Success(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()

	repoMock.EXPECT().AddPoints(ctx, int64(1), 10).Return(30, nil).Times(1)

	total, err := service.AwardPoints(ctx, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 30, total)
}

func TestAwardPoints_RepositoryError(t *testing.T) {
	service, repoMock := newTestUserService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("connection reset")

	repoMock.EXPECT().AddPoints(ctx, int64(1), 10).Return(0, repoError).Times(1)

	total, err := service.AwardPoints(ctx, 1, 10)

	require.Error(t, err)
	assert.Zero(t, total)
	assert.ErrorContains(t, err, "could not award points")
}
