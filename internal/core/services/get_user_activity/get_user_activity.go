package getuseractivity

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	"errors"
	"time"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Activity analysis.Activity
}

type service struct {
	log           logging.Logger
	logRepository analysis.LogRepository
	now           func() time.Time
}

func New(
	log logging.Logger,
	logRepository analysis.LogRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if logRepository == nil {
		panic(e.NewNilArgumentError("logRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		logRepository: logRepository,
		now:           now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	activity, err := s.logRepository.GetUserActivity(ctx, input.UserID, dayStart)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user activity.",
			logging.Entry("userId", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Activity: activity}, nil
}
