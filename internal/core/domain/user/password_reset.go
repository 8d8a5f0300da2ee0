package user

import "context"

// PasswordResetToken is an opaque single-use credential. It is never parsed,
// only matched exactly against the stored value.
type PasswordResetToken string

type PasswordResetTokenGenerator interface {
	GenerateToken() PasswordResetToken
}

type PasswordResetTokenSender interface {
	SendToken(ctx context.Context, user User, token PasswordResetToken) error
}
