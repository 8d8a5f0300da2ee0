package user

import (
	c "deepscan/internal/core/domain/common"
	e "deepscan/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID                     ID
	Username               Username
	Email                  c.Email
	PasswordHash           PasswordHash
	Role                   Role
	CreatedAt              time.Time
	PasswordResetToken     c.Optional[PasswordResetToken]
	PasswordResetExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if !u.Role.IsValid() {
		return e.NewInvalidStateError(fmt.Sprintf("invalid role %q for user %d", u.Role, u.ID))
	}
	// Reset token and its expiry are set and cleared together.
	if u.PasswordResetToken.IsPresent != u.PasswordResetExpiresAt.IsPresent {
		return e.NewInvalidStateError(fmt.Sprintf("reset token and expiry mismatch for user %d", u.ID))
	}
	return nil
}

// HasPendingReset reports whether a reset token exists and has not expired.
// Validity is always recomputed from the given moment, never cached.
func (u *User) HasPendingReset(now time.Time) bool {
	if !u.PasswordResetToken.IsPresent {
		return false
	}
	return now.Before(u.PasswordResetExpiresAt.Value)
}
