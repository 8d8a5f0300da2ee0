package analysis

import (
	"context"
	"deepscan/internal/core/domain/user"
	"fmt"
	"math"
	"sync"
	"time"
)

type FakeReportGenerator struct {
	Report Report
}

func NewFakeReportGenerator(report Report) *FakeReportGenerator {
	return &FakeReportGenerator{Report: report}
}

func (g *FakeReportGenerator) Generate() Report {
	return g.Report
}

type FakeLogRepository struct {
	Records     []LogRecord
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeLogRepository() *FakeLogRepository {
	return &FakeLogRepository{}
}

func (r *FakeLogRepository) Create(ctx context.Context, input CreateLogRecordInput) (rec LogRecord, err error) {
	if r.ReturnError {
		return rec, fmt.Errorf("could not create analysis log record")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rec = LogRecord{
		ID:         ID(len(r.Records) + 1),
		UserID:     input.UserID,
		IsDeepfake: input.Report.IsDeepfake,
		Confidence: input.Report.Confidence,
		CreatedAt:  input.CreatedAt,
	}
	r.Records = append(r.Records, rec)
	return rec, nil
}

func (r *FakeLogRepository) GetUserActivity(
	ctx context.Context,
	userID user.ID,
	dayStart time.Time,
) (a Activity, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get user activity")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	confidenceSum := 0
	for _, rec := range r.Records {
		if rec.UserID != userID {
			continue
		}
		a.TotalCount++
		confidenceSum += rec.Confidence
		if !rec.CreatedAt.Before(dayStart) {
			a.TodayCount++
		}
	}
	if a.TotalCount > 0 {
		a.AvgConfidence = int(math.Round(float64(confidenceSum) / float64(a.TotalCount)))
	}
	return a, nil
}
