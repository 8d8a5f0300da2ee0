package reportgenerator

import (
	"deepscan/internal/core/domain/analysis"
	"math/rand"
	"time"
)

// Mock produces a randomized but plausible looking report. It stands in
// for the real detection pipeline until that service is available.
type Mock struct {
	rand *rand.Rand
}

func NewMock() *Mock {
	return &Mock{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *Mock) Generate() analysis.Report {
	isDeepfake := g.rand.Float64() > 0.5
	confidence := 75 + g.rand.Intn(24)

	judgment := analysis.Judgment{
		Title: "Overall Assessment",
		Description: "The media appears to be authentic with no significant " +
			"signs of manipulation found.",
	}
	if isDeepfake {
		judgment.Description = "The media shows moderate signs of manipulation, " +
			"but further expert review is recommended."
	}

	return analysis.Report{
		IsDeepfake:    isDeepfake,
		Confidence:    confidence,
		ChiefJudgment: judgment,
		VisualAnalysis: []analysis.Finding{
			{
				Title:       "Lighting Inconsistencies",
				Description: "Shadows around the subject do not fully match the environment.",
				Level:       pickLevel(isDeepfake, analysis.LevelMedium),
			},
			{
				Title:       "Facial Artifacts",
				Description: "Minor blurring observed around the mouth during speech.",
				Level:       pickLevel(isDeepfake, analysis.LevelHigh),
			},
		},
		MetadataAnalysis: []analysis.Finding{
			{
				Title:       "EXIF Data",
				Description: "Creation date appears to be modified after original capture.",
				Level:       pickLevel(isDeepfake, analysis.LevelHigh),
			},
		},
		Forensics: []analysis.Finding{
			{
				Title:       "Noise Pattern",
				Description: "Inconsistent noise patterns detected in the background.",
				Level:       pickLevel(isDeepfake, analysis.LevelMedium),
			},
			{
				Title:       "Compression Analysis",
				Description: "No unusual compression artifacts found.",
				Level:       analysis.LevelLow,
			},
		},
	}
}

func pickLevel(isDeepfake bool, suspicious analysis.Level) analysis.Level {
	if isDeepfake {
		return suspicious
	}
	return analysis.LevelLow
}
