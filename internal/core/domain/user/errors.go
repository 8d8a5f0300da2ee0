package user

import "errors"

var (
	ErrUserAlreadyExists         = errors.New("username or email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidPasswordResetToken = errors.New("password reset token is invalid or has expired")
)
