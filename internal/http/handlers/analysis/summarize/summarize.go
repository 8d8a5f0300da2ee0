package summarize

import (
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/services"
	summarizereport "deepscan/internal/core/services/summarize_report"
	"deepscan/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[summarizereport.Input, summarizereport.Result]
}

func New(service services.Service[summarizereport.Input, summarizereport.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type result struct {
	Summary string `json:"summary"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	serviceResult, err := h.service.Run(r.Context(), summarizereport.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result{Summary: serviceResult.Summary}, http.StatusOK)
}
