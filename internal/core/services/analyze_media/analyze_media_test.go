package analyzemedia

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	c "deepscan/internal/core/domain/common"
	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)

var REPORT = analysis.Report{
	IsDeepfake: true,
	Confidence: 91,
	ChiefJudgment: analysis.Judgment{
		Title:       "Overall Assessment",
		Description: "test",
	},
}

type suite struct {
	log       *logging.FakeLogger
	generator *analysis.FakeReportGenerator
	logRepo   *analysis.FakeLogRepository
}

func setupSuite() *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		generator: analysis.NewFakeReportGenerator(REPORT),
		logRepo:   analysis.NewFakeLogRepository(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.generator, s.logRepo, func() time.Time { return NOW })
}

func TestReportReturnedAndLogged(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		MediaName: "video.mp4",
		MediaSize: 1024,
		UserID:    c.NewOptional(user.ID(7), true),
	})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(REPORT, result.Report)
	assert.Len(suite.logRepo.Records, 1)
	assert.Equal(user.ID(7), suite.logRepo.Records[0].UserID)
	assert.True(suite.logRepo.Records[0].IsDeepfake)
	assert.Equal(91, suite.logRepo.Records[0].Confidence)
	assert.True(NOW.Equal(suite.logRepo.Records[0].CreatedAt))
}

func TestAnonymousAnalysisIsNotLogged(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{MediaName: "video.mp4"})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(REPORT, result.Report)
	assert.Len(suite.logRepo.Records, 0)
}

func TestLogWriteFailureDoesNotFailTheAnalysis(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.logRepo.ReturnError = true
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		MediaName: "video.mp4",
		UserID:    c.NewOptional(user.ID(7), true),
	})

	// Verify ---
	assert := require.New(t)
	assert.NoError(err)
	assert.Equal(REPORT, result.Report)
}
