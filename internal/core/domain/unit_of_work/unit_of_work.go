package uow

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	"deepscan/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	AnalysisLogs() analysis.LogRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
