package reportgenerator

import (
	"deepscan/internal/core/domain/analysis"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratedReport(t *testing.T) {
	generator := NewMock()

	sawDeepfake := false
	sawAuthentic := false
	for i := 0; i < 100; i++ {
		report := generator.Generate()

		require.GreaterOrEqual(t, report.Confidence, 75)
		require.LessOrEqual(t, report.Confidence, 98)
		require.Equal(t, "Overall Assessment", report.ChiefJudgment.Title)
		require.Len(t, report.VisualAnalysis, 2)
		require.Len(t, report.MetadataAnalysis, 1)
		require.Len(t, report.Forensics, 2)

		if report.IsDeepfake {
			sawDeepfake = true
			require.Equal(t, analysis.LevelHigh, report.VisualAnalysis[1].Level)
		} else {
			sawAuthentic = true
			require.Equal(t, analysis.LevelLow, report.VisualAnalysis[1].Level)
		}
		require.Equal(t, analysis.LevelLow, report.Forensics[1].Level)
	}
	require.True(t, sawDeepfake)
	require.True(t, sawAuthentic)
}
