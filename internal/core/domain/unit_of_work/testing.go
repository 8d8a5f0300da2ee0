package uow

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	"deepscan/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository        *user.FakeUserRepository
	AnalysisLogRepository *analysis.FakeLogRepository
	WasRollbackCalled     bool
	WasCommitCalled       bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	analysisLogRepository *analysis.FakeLogRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:        userRepository,
		AnalysisLogRepository: analysisLogRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) AnalysisLogs() analysis.LogRepository {
	return c.AnalysisLogRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			analysis.NewFakeLogRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
