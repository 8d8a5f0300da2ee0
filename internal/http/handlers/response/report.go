package response

import (
	"deepscan/internal/core/domain/analysis"
)

type Judgment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Finding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

type Report struct {
	IsDeepfake       bool      `json:"is_deepfake"`
	Confidence       int       `json:"confidence"`
	ChiefJudgment    Judgment  `json:"chief_judgment"`
	VisualAnalysis   []Finding `json:"visual_analysis"`
	MetadataAnalysis []Finding `json:"metadata_analysis"`
	Forensics        []Finding `json:"forensics"`
}

func (r *Report) FromDomainReport(dr analysis.Report) {
	r.IsDeepfake = dr.IsDeepfake
	r.Confidence = dr.Confidence
	r.ChiefJudgment = Judgment{
		Title:       dr.ChiefJudgment.Title,
		Description: dr.ChiefJudgment.Description,
	}
	r.VisualAnalysis = findingsFromDomain(dr.VisualAnalysis)
	r.MetadataAnalysis = findingsFromDomain(dr.MetadataAnalysis)
	r.Forensics = findingsFromDomain(dr.Forensics)
}

func findingsFromDomain(findings []analysis.Finding) []Finding {
	encoded := make([]Finding, 0, len(findings))
	for _, f := range findings {
		encoded = append(encoded, Finding{
			Title:       f.Title,
			Description: f.Description,
			Level:       string(f.Level),
		})
	}
	return encoded
}
