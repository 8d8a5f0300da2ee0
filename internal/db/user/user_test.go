package user

import (
	"context"
	c "deepscan/internal/core/domain/common"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/db"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = "testuser"
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	RESET_TOKEN   = "aaaabbbbccccddddeeeeffff0000111122223333"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	u, err := s.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Username:     user.Username(USERNAME),
			Email:        c.NewEmail(EMAIL),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			Role:         user.RoleUser,
			CreatedAt:    NOW,
		},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(user.Username(USERNAME), u.Username)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.Equal(user.RoleUser, u.Role)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.False(u.PasswordResetToken.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)
}

func (s *testSuite) TestCreateUserAlreadyExistsError() {
	type test struct {
		id       string
		username string
		email    string
	}
	cases := []test{
		{id: "same username", username: USERNAME, email: "other@test.test"},
		{id: "same email", username: "otheruser", email: EMAIL},
		{id: "same username and email", username: USERNAME, email: EMAIL},
	}

	s.createUser()
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.repo.Create(
				context.Background(),
				user.CreateUserInput{
					Username:     user.Username(testcase.username),
					Email:        c.NewEmail(testcase.email),
					PasswordHash: user.PasswordHash(PASSWORD_HASH),
					Role:         user.RoleUser,
					CreatedAt:    NOW,
				},
			)
			s.Require().ErrorIs(err, user.ErrUserAlreadyExists)
		})
	}
}

func (s *testSuite) TestGetByUsernameIsCaseSensitive() {
	created := s.createUser()

	u, err := s.repo.GetByUsername(context.Background(), user.Username(USERNAME))
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByUsername(context.Background(), user.Username("TESTUSER"))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestGetByEmail() {
	created := s.createUser()

	u, err := s.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(err)
	s.Equal(created.ID, u.ID)

	_, err = s.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestSetPasswordResetToken() {
	created := s.createUser()
	expiresAt := NOW.Add(time.Hour)

	u, err := s.repo.SetPasswordResetToken(
		context.Background(),
		user.SetPasswordResetTokenInput{
			UserID:    created.ID,
			Token:     user.PasswordResetToken(RESET_TOKEN),
			ExpiresAt: expiresAt,
		},
	)

	s.Nil(err)
	s.True(u.PasswordResetToken.IsPresent)
	s.Equal(user.PasswordResetToken(RESET_TOKEN), u.PasswordResetToken.Value)
	s.True(u.PasswordResetExpiresAt.IsPresent)
	s.True(expiresAt.Equal(u.PasswordResetExpiresAt.Value))
}

func (s *testSuite) TestSetPasswordResetTokenOverwritesPendingToken() {
	created := s.createUser()
	s.setResetToken(created.ID, RESET_TOKEN, NOW.Add(time.Hour))

	newExpiresAt := NOW.Add(2 * time.Hour)
	u, err := s.repo.SetPasswordResetToken(
		context.Background(),
		user.SetPasswordResetTokenInput{
			UserID:    created.ID,
			Token:     user.PasswordResetToken("new-reset-token"),
			ExpiresAt: newExpiresAt,
		},
	)

	s.Nil(err)
	s.Equal(user.PasswordResetToken("new-reset-token"), u.PasswordResetToken.Value)
	s.True(newExpiresAt.Equal(u.PasswordResetExpiresAt.Value))

	_, err = s.repo.ResetPasswordByToken(
		context.Background(),
		user.ResetPasswordInput{
			Token:        user.PasswordResetToken(RESET_TOKEN),
			At:           NOW,
			PasswordHash: user.PasswordHash("new-password-hash"),
		},
	)
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
}

func (s *testSuite) TestSetPasswordResetTokenUserDoesNotExist() {
	_, err := s.repo.SetPasswordResetToken(
		context.Background(),
		user.SetPasswordResetTokenInput{
			UserID:    user.ID(111222333),
			Token:     user.PasswordResetToken(RESET_TOKEN),
			ExpiresAt: NOW.Add(time.Hour),
		},
	)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestResetPasswordByTokenSuccess() {
	created := s.createUser()
	s.setResetToken(created.ID, RESET_TOKEN, NOW.Add(time.Hour))

	u, err := s.repo.ResetPasswordByToken(
		context.Background(),
		user.ResetPasswordInput{
			Token:        user.PasswordResetToken(RESET_TOKEN),
			At:           NOW,
			PasswordHash: user.PasswordHash("new-password-hash"),
		},
	)

	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
	s.False(u.PasswordResetToken.IsPresent)
	s.False(u.PasswordResetExpiresAt.IsPresent)
}

func (s *testSuite) TestResetPasswordByTokenIsSingleUse() {
	created := s.createUser()
	s.setResetToken(created.ID, RESET_TOKEN, NOW.Add(time.Hour))

	input := user.ResetPasswordInput{
		Token:        user.PasswordResetToken(RESET_TOKEN),
		At:           NOW,
		PasswordHash: user.PasswordHash("new-password-hash"),
	}
	_, err := s.repo.ResetPasswordByToken(context.Background(), input)
	s.Nil(err)

	_, err = s.repo.ResetPasswordByToken(context.Background(), input)
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))

	u := s.getUserByID(created.ID)
	s.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
}

func (s *testSuite) TestResetPasswordByTokenExpiryIsStrict() {
	type test struct {
		id        string
		at        time.Time
		isAllowed bool
	}
	expiresAt := NOW.Add(time.Hour)
	cases := []test{
		{id: "well before expiry", at: NOW, isAllowed: true},
		{id: "just before expiry", at: expiresAt.Add(-time.Second), isAllowed: true},
		{id: "exactly at expiry", at: expiresAt, isAllowed: false},
		{id: "after expiry", at: expiresAt.Add(time.Second), isAllowed: false},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			created := s.createUser()
			s.setResetToken(created.ID, RESET_TOKEN, expiresAt)

			_, err := s.repo.ResetPasswordByToken(
				context.Background(),
				user.ResetPasswordInput{
					Token:        user.PasswordResetToken(RESET_TOKEN),
					At:           testcase.at,
					PasswordHash: user.PasswordHash("new-password-hash"),
				},
			)
			if testcase.isAllowed {
				s.Nil(err)
			} else {
				s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
			}

			db.TruncateTables(s.pool)
		})
	}
}

func (s *testSuite) TestResetPasswordByUnknownToken() {
	created := s.createUser()
	s.setResetToken(created.ID, RESET_TOKEN, NOW.Add(time.Hour))

	_, err := s.repo.ResetPasswordByToken(
		context.Background(),
		user.ResetPasswordInput{
			Token:        user.PasswordResetToken("unknown-token"),
			At:           NOW,
			PasswordHash: user.PasswordHash("new-password-hash"),
		},
	)
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))

	u := s.getUserByID(created.ID)
	s.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	s.True(u.PasswordResetToken.IsPresent)
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	u, err := s.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Username:     user.Username(USERNAME),
			Email:        c.NewEmail(EMAIL),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			Role:         user.RoleUser,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	return u
}

func (s *testSuite) setResetToken(id user.ID, token string, expiresAt time.Time) {
	s.T().Helper()
	_, err := s.repo.SetPasswordResetToken(
		context.Background(),
		user.SetPasswordResetTokenInput{
			UserID:    id,
			Token:     user.PasswordResetToken(token),
			ExpiresAt: expiresAt,
		},
	)
	if err != nil {
		s.FailNowf("could not set password reset token", "id: %v, err: %v", id, err)
	}
}

func (s *testSuite) getUserByID(id user.ID) user.User {
	s.T().Helper()
	u, err := s.repo.GetByID(context.Background(), id)
	if err != nil {
		s.FailNowf("could not get user by ID", "id: %v, err: %v", id, err)
	}
	return u
}
