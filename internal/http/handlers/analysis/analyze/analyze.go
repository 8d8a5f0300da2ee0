package analyze

import (
	c "deepscan/internal/core/domain/common"
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	analyzemedia "deepscan/internal/core/services/analyze_media"
	"deepscan/internal/http/handlers/response"
	"net/http"
	"strconv"
)

// Media uploads are capped at 50 MiB.
const maxUploadBytes = 50 << 20

type Handler struct {
	service services.Service[analyzemedia.Input, analyzemedia.Result]
}

func New(service services.Service[analyzemedia.Input, analyzemedia.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RenderError(rw, "No media file found in the request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		response.RenderError(rw, "No media file found in the request", http.StatusBadRequest)
		return
	}
	file.Close()

	input := analyzemedia.Input{
		MediaName: header.Filename,
		MediaSize: header.Size,
	}
	if rawUserID := r.FormValue("userId"); rawUserID != "" {
		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil {
			response.RenderMessage(rw, "Invalid user ID.", http.StatusBadRequest)
			return
		}
		input.UserID = c.NewOptional(user.ID(userID), true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	report := response.Report{}
	report.FromDomainReport(result.Report)
	response.Render(rw, report, http.StatusOK)
}
