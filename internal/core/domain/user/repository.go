package user

import (
	"context"
	c "deepscan/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	CreatedAt    time.Time
}

type SetPasswordResetTokenInput struct {
	UserID    ID
	Token     PasswordResetToken
	ExpiresAt time.Time
}

type ResetPasswordInput struct {
	Token        PasswordResetToken
	At           time.Time
	PasswordHash PasswordHash
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByUsername(ctx context.Context, username Username) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)

	// SetPasswordResetToken overwrites any pending token for the user.
	SetPasswordResetToken(ctx context.Context, input SetPasswordResetTokenInput) (User, error)

	// ResetPasswordByToken sets the new password hash and clears the reset
	// token in one conditional update: the token must match exactly and its
	// expiry must be strictly after input.At at update time. Returns
	// ErrInvalidPasswordResetToken when no row matches, so concurrent
	// consumers of the same token get exactly one success.
	ResetPasswordByToken(ctx context.Context, input ResetPasswordInput) (User, error)
}
