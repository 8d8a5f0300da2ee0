package analysis

import (
	"deepscan/internal/core/domain/user"
	"time"
)

type ID int64

type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

type Finding struct {
	Title       string
	Description string
	Level       Level
}

type Judgment struct {
	Title       string
	Description string
}

// Report is the fixed-shape result of one media analysis. The contents are
// produced by a ReportGenerator; callers treat them as opaque.
type Report struct {
	IsDeepfake       bool
	Confidence       int
	ChiefJudgment    Judgment
	VisualAnalysis   []Finding
	MetadataAnalysis []Finding
	Forensics        []Finding
}

type ReportGenerator interface {
	Generate() Report
}

// LogRecord is one row of per-user analysis history.
type LogRecord struct {
	ID         ID
	UserID     user.ID
	IsDeepfake bool
	Confidence int
	CreatedAt  time.Time
}

// Activity aggregates a user's analysis history for the dashboard.
type Activity struct {
	TotalCount    uint
	TodayCount    uint
	AvgConfidence int
}
