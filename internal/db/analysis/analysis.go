package analysis

import (
	"context"
	"deepscan/internal/core/domain/analysis"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/db"
	"encoding/json"
	"time"

	"github.com/jackc/pgtype"
)

type PgxLogRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxLogRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxLogRepository{db: db}
}

func (r *PgxLogRepository) Create(
	ctx context.Context,
	input analysis.CreateLogRecordInput,
) (record analysis.LogRecord, err error) {
	details, err := encodeDetails(input.Report)
	if err != nil {
		return record, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO analysis_log (account_id, is_deepfake, confidence, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, account_id, is_deepfake, confidence, created_at`,
		int64(input.UserID),
		input.Report.IsDeepfake,
		input.Report.Confidence,
		details,
		input.CreatedAt,
	)
	err = row.Scan(
		&record.ID,
		&record.UserID,
		&record.IsDeepfake,
		&record.Confidence,
		&record.CreatedAt,
	)
	if err != nil {
		return record, err
	}
	return record, nil
}

func (r *PgxLogRepository) GetUserActivity(
	ctx context.Context,
	userID user.ID,
	dayStart time.Time,
) (activity analysis.Activity, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COALESCE(ROUND(AVG(confidence)), 0)::int
		FROM analysis_log
		WHERE account_id = $1`,
		int64(userID),
		dayStart,
	)
	var totalCount, todayCount int64
	err = row.Scan(&totalCount, &todayCount, &activity.AvgConfidence)
	if err != nil {
		return activity, err
	}
	activity.TotalCount = uint(totalCount)
	activity.TodayCount = uint(todayCount)
	return activity, nil
}

func encodeDetails(report analysis.Report) (details pgtype.JSONB, err error) {
	reportBytes, err := json.Marshal(encodeReport(report))
	if err != nil {
		return details, err
	}
	err = details.Set(reportBytes)
	if err != nil {
		return details, err
	}
	return details, nil
}

type dbJudgment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type dbFinding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

type dbReport struct {
	ChiefJudgment    dbJudgment  `json:"chief_judgment"`
	VisualAnalysis   []dbFinding `json:"visual_analysis"`
	MetadataAnalysis []dbFinding `json:"metadata_analysis"`
	Forensics        []dbFinding `json:"forensics"`
}

func encodeReport(report analysis.Report) dbReport {
	return dbReport{
		ChiefJudgment: dbJudgment{
			Title:       report.ChiefJudgment.Title,
			Description: report.ChiefJudgment.Description,
		},
		VisualAnalysis:   encodeFindings(report.VisualAnalysis),
		MetadataAnalysis: encodeFindings(report.MetadataAnalysis),
		Forensics:        encodeFindings(report.Forensics),
	}
}

func encodeFindings(findings []analysis.Finding) []dbFinding {
	encoded := make([]dbFinding, 0, len(findings))
	for _, f := range findings {
		encoded = append(encoded, dbFinding{
			Title:       f.Title,
			Description: f.Description,
			Level:       string(f.Level),
		})
	}
	return encoded
}
