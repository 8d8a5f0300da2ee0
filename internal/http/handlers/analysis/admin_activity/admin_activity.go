package adminactivity

import (
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/services"
	getadminactivity "deepscan/internal/core/services/get_admin_activity"
	"deepscan/internal/http/handlers/response"
	"net/http"
	"time"
)

// TODO: restrict to admin accounts once request authentication exists.
type Handler struct {
	service services.Service[getadminactivity.Input, getadminactivity.Result]
}

func New(service services.Service[getadminactivity.Input, getadminactivity.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type row struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	AnalysesToday int       `json:"analyses_today"`
	TotalAnalyses int       `json:"total_analyses"`
	LastActive    time.Time `json:"last_active"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	serviceResult, err := h.service.Run(r.Context(), getadminactivity.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rows := make([]row, 0, len(serviceResult.Rows))
	for _, serviceRow := range serviceResult.Rows {
		rows = append(rows, row{
			ID:            serviceRow.ID,
			Username:      serviceRow.Username,
			AnalysesToday: serviceRow.AnalysesToday,
			TotalAnalyses: serviceRow.TotalAnalyses,
			LastActive:    serviceRow.LastActive,
		})
	}
	response.Render(rw, rows, http.StatusOK)
}
