package response

import (
	"deepscan/internal/core/domain/analysis"
)

type UserActivity struct {
	TotalAnalyses uint `json:"totalAnalyses"`
	AnalysesToday uint `json:"analysesToday"`
	AvgConfidence int  `json:"avgConfidence"`
}

func (a *UserActivity) FromDomainActivity(da analysis.Activity) {
	a.TotalAnalyses = da.TotalCount
	a.AnalysesToday = da.TodayCount
	a.AvgConfidence = da.AvgConfidence
}
