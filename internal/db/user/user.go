package user

import (
	"context"
	"database/sql"
	c "deepscan/internal/core/domain/common"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/db"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "account_username_idx"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const accountColumns = `id, username, email, password_hash, role, created_at,
	password_reset_token, password_reset_expires_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+accountColumns,
		string(input.Username),
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) {
		if errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			(errUniqueConstraint.ConstraintName == USERNAME_CONSTRAINT_NAME ||
				errUniqueConstraint.ConstraintName == EMAIL_CONSTRAINT_NAME) {
			return u, user.ErrUserAlreadyExists
		}
	}

	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE id = $1`,
		int64(id),
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByUsername(ctx context.Context, username user.Username) (user.User, error) {
	// Exact match, case-sensitive.
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE username = $1`,
		string(username),
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE email = $1`,
		string(email),
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	input user.SetPasswordResetTokenInput,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account
		SET password_reset_token = $2, password_reset_expires_at = $3
		WHERE id = $1
		RETURNING `+accountColumns,
		int64(input.UserID),
		string(input.Token),
		input.ExpiresAt,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

// ResetPasswordByToken is a single conditional update, so two concurrent
// requests with the same token cannot both succeed.
func (r *PgxUserRepository) ResetPasswordByToken(
	ctx context.Context,
	input user.ResetPasswordInput,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account
		SET password_hash = $3, password_reset_token = NULL, password_reset_expires_at = NULL
		WHERE password_reset_token = $1 AND password_reset_expires_at > $2
		RETURNING `+accountColumns,
		string(input.Token),
		input.At,
		string(input.PasswordHash),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) getOne(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var resetToken sql.NullString
	var resetExpiresAt sql.NullTime
	err = row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&resetToken,
		&resetExpiresAt,
	)
	if err != nil {
		return u, err
	}
	u.PasswordResetToken = c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Valid)
	u.PasswordResetExpiresAt = c.NewOptional(resetExpiresAt.Time, resetExpiresAt.Valid)
	return u, nil
}
