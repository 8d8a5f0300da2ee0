package analysis

import (
	"context"
	"deepscan/internal/core/domain/user"
	"time"
)

type CreateLogRecordInput struct {
	UserID    user.ID
	Report    Report
	CreatedAt time.Time
}

type LogRepository interface {
	Create(ctx context.Context, input CreateLogRecordInput) (LogRecord, error)

	// GetUserActivity aggregates the user's records: total count, count of
	// records created at or after dayStart, and rounded average confidence.
	GetUserActivity(ctx context.Context, userID user.ID, dayStart time.Time) (Activity, error)
}
