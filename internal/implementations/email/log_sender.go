package email

import (
	"context"
	"net/url"

	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
)

// LogResetTokenSender writes the reset link to the log instead of sending
// an email. Used in local development where no SES template is configured.
type LogResetTokenSender struct {
	log                  logging.Logger
	passwordResetBaseUrl url.URL
}

func NewLogResetTokenSender(log logging.Logger, passwordResetBaseUrl url.URL) *LogResetTokenSender {
	return &LogResetTokenSender{log: log, passwordResetBaseUrl: passwordResetBaseUrl}
}

func (s *LogResetTokenSender) SendToken(ctx context.Context, u user.User, token user.PasswordResetToken) error {
	resetUrl := s.passwordResetBaseUrl
	query := resetUrl.Query()
	query.Set("token", string(token))
	resetUrl.RawQuery = query.Encode()

	s.log.Info(
		ctx,
		"Password reset link issued.",
		logging.Entry("email", u.Email),
		logging.Entry("resetUrl", resetUrl.String()),
	)
	return nil
}
