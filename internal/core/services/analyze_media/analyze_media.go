package analyzemedia

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	c "deepscan/internal/core/domain/common"
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	"errors"
	"time"
)

type Input struct {
	MediaName string
	MediaSize int64
	UserID    c.Optional[user.ID]
}

type Result struct {
	Report analysis.Report
}

type service struct {
	log             logging.Logger
	reportGenerator analysis.ReportGenerator
	logRepository   analysis.LogRepository
	now             func() time.Time
}

func New(
	log logging.Logger,
	reportGenerator analysis.ReportGenerator,
	logRepository analysis.LogRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reportGenerator == nil {
		panic(e.NewNilArgumentError("reportGenerator"))
	}
	if logRepository == nil {
		panic(e.NewNilArgumentError("logRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		reportGenerator: reportGenerator,
		logRepository:   logRepository,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	report := s.reportGenerator.Generate()

	s.log.Info(
		ctx,
		"Media analyzed.",
		logging.Entry("media", input.MediaName),
		logging.Entry("size", input.MediaSize),
		logging.Entry("isDeepfake", report.IsDeepfake),
		logging.Entry("confidence", report.Confidence),
	)

	if input.UserID.IsPresent {
		_, err := s.logRepository.Create(ctx, analysis.CreateLogRecordInput{
			UserID:    input.UserID.Value,
			Report:    report,
			CreatedAt: s.now(),
		})
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		// The report is already produced; a failed history write must not
		// fail the analysis response.
		if err != nil {
			s.log.Error(
				ctx,
				"Could not record analysis log.",
				logging.Entry("userId", input.UserID.Value),
				logging.Entry("err", err),
			)
		}
	}

	return Result{Report: report}, nil
}
