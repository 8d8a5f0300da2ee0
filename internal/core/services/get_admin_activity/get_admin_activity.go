package getadminactivity

import (
	"context"
	"deepscan/internal/core/services"
	"time"
)

// Mock collaborator: the admin activity table is canned demonstration data,
// to be replaced once real per-user aggregation is exposed to admins.

type Input struct{}

type Row struct {
	ID            int64
	Username      string
	AnalysesToday int
	TotalAnalyses int
	LastActive    time.Time
}

type Result struct {
	Rows []Row
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{Rows: []Row{
		{
			ID:            1,
			Username:      "john_doe",
			AnalysesToday: 5,
			TotalAnalyses: 45,
			LastActive:    time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Username:      "jane_smith",
			AnalysesToday: 2,
			TotalAnalyses: 120,
			LastActive:    time.Date(2023, 10, 27, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:            3,
			Username:      "test_user",
			AnalysesToday: 0,
			TotalAnalyses: 15,
			LastActive:    time.Date(2023, 10, 26, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:            4,
			Username:      "data_analyst",
			AnalysesToday: 8,
			TotalAnalyses: 250,
			LastActive:    time.Date(2023, 10, 27, 12, 0, 0, 0, time.UTC),
		},
	}}, nil
}
