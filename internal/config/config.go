package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Secret     string `env:"SECRET,notEmpty"`

	Port           uint16   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,notEmpty"`
	RedisURL      string `env:"REDIS_URL,notEmpty"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordResetBaseURL       string        `env:"PASSWORD_RESET_BASE_URL" envDefault:"http://localhost:3000/reset-password.html"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	// Both must be set for reset emails to go through SES. When either is
	// empty the reset link is written to the log instead.
	EmailSender           string `env:"EMAIL_SENDER"`
	PasswordResetTemplate string `env:"SES_PASSWORD_RESET_TEMPLATE"`

	LogInRateLimitPerHour         int `env:"LOG_IN_RATE_LIMIT_PER_HOUR" envDefault:"10"`
	PasswordResetRateLimitPerHour int `env:"PASSWORD_RESET_RATE_LIMIT_PER_HOUR" envDefault:"3"`

	SentryDSN string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
