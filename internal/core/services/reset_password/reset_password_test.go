package resetpassword

import (
	"context"
	c "deepscan/internal/core/domain/common"
	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)

const TOKEN = "aaaabbbbccccddddeeeeffff0000111122223333"

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
	now      time.Time
}

func setupSuite() *suite {
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
		hasher:   user.NewFakePasswordHasher(),
		now:      NOW,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, func() time.Time { return s.now })
}

func (s *suite) createUserWithPendingReset(expiresAt time.Time) user.User {
	hash, err := s.hasher.HashPassword("pw1")
	if err != nil {
		panic(err)
	}
	u, err := s.userRepo.Create(context.Background(), user.CreateUserInput{
		Username:     "alice",
		Email:        c.Email("a@x.com"),
		PasswordHash: hash,
		Role:         user.RoleUser,
		CreatedAt:    NOW.Add(-time.Hour),
	})
	if err != nil {
		panic(err)
	}
	u, err = s.userRepo.SetPasswordResetToken(context.Background(), user.SetPasswordResetTokenInput{
		UserID:    u.ID,
		Token:     TOKEN,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func TestPasswordReset(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	created := suite.createUserWithPendingReset(NOW.Add(time.Hour))
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: TOKEN, NewPassword: "pw2"})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)

	stored, err := suite.userRepo.GetByID(context.Background(), created.ID)
	assert.NoError(err)
	assert.True(suite.hasher.ValidatePassword("pw2", stored.PasswordHash))
	assert.False(suite.hasher.ValidatePassword("pw1", stored.PasswordHash))
	assert.False(stored.PasswordResetToken.IsPresent)
	assert.False(stored.PasswordResetExpiresAt.IsPresent)
}

func TestTokenIsSingleUse(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	created := suite.createUserWithPendingReset(NOW.Add(time.Hour))
	service := suite.createService()

	// Exercise ---
	_, firstErr := service.Run(context.Background(), Input{Token: TOKEN, NewPassword: "pw2"})
	_, secondErr := service.Run(context.Background(), Input{Token: TOKEN, NewPassword: "pw3"})

	// Verify: exactly one success; the password from the second call never
	// lands.
	assert := require.New(t)
	assert.NoError(firstErr)
	assert.ErrorIs(secondErr, user.ErrInvalidPasswordResetToken)

	stored, err := suite.userRepo.GetByID(context.Background(), created.ID)
	assert.NoError(err)
	assert.True(suite.hasher.ValidatePassword("pw2", stored.PasswordHash))
}

func TestExpiryIsStrict(t *testing.T) {
	cases := []struct {
		id        string
		consumeAt time.Time
		wantErr   bool
	}{
		{id: "well before expiry", consumeAt: NOW, wantErr: false},
		{id: "just before expiry", consumeAt: NOW.Add(time.Hour - time.Second), wantErr: false},
		{id: "exactly at expiry", consumeAt: NOW.Add(time.Hour), wantErr: true},
		{id: "after expiry", consumeAt: NOW.Add(2 * time.Hour), wantErr: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			suite.createUserWithPendingReset(NOW.Add(time.Hour))
			suite.now = testcase.consumeAt
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{Token: TOKEN, NewPassword: "pw2"})

			// Verify ---
			if testcase.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidPasswordResetToken)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReissuedTokenInvalidatesOldOne(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	created := suite.createUserWithPendingReset(NOW.Add(time.Hour))
	_, err := suite.userRepo.SetPasswordResetToken(context.Background(), user.SetPasswordResetTokenInput{
		UserID:    created.ID,
		Token:     "newer-token",
		ExpiresAt: NOW.Add(time.Hour),
	})
	require.NoError(t, err)
	service := suite.createService()

	// Exercise ---
	_, oldErr := service.Run(context.Background(), Input{Token: TOKEN, NewPassword: "pw2"})
	_, newErr := service.Run(context.Background(), Input{Token: "newer-token", NewPassword: "pw3"})

	// Verify ---
	require.ErrorIs(t, oldErr, user.ErrInvalidPasswordResetToken)
	require.NoError(t, newErr)
}

func TestUnknownToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createUserWithPendingReset(NOW.Add(time.Hour))
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: "no-such-token", NewPassword: "pw2"})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetToken)
}
