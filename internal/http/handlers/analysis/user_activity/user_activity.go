package useractivity

import (
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	getuseractivity "deepscan/internal/core/services/get_user_activity"
	"deepscan/internal/http/handlers/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getuseractivity.Input, getuseractivity.Result]
}

func New(service services.Service[getuseractivity.Input, getuseractivity.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		response.RenderMessage(rw, "User ID is required.", http.StatusBadRequest)
		return
	}

	serviceResult, err := h.service.Run(
		r.Context(),
		getuseractivity.Input{UserID: user.ID(userID)},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	activity := response.UserActivity{}
	activity.FromDomainActivity(serviceResult.Activity)
	response.Render(rw, activity, http.StatusOK)
}
