package summarizereport

import (
	"context"
	"deepscan/internal/core/services"
)

// Mock collaborator: summary generation is a canned response.

type Input struct{}

type Result struct {
	Summary string
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{
		Summary: "This is a mock summary of the forensic analysis report. " +
			"The analysis detected several key indicators.",
	}, nil
}
