package dashboard

import (
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	getdashboard "deepscan/internal/core/services/get_dashboard"
	"deepscan/internal/http/handlers/response"
	"errors"
	"fmt"
	"net/http"
)

// The username comes from a query parameter and is trusted as-is. There are
// no session tokens, so there is nothing stronger to check against.
type Handler struct {
	service services.Service[getdashboard.Input, getdashboard.Result]
}

func New(service services.Service[getdashboard.Input, getdashboard.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type result struct {
	Message string        `json:"message"`
	User    response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.RenderMessage(rw, "Unauthorized: No user specified.", http.StatusUnauthorized)
		return
	}

	serviceResult, err := h.service.Run(
		r.Context(),
		getdashboard.Input{Username: user.Username(username)},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderMessage(rw, "User not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	res := result{Message: fmt.Sprintf("Welcome to your dashboard, %s!", username)}
	res.User.FromDomainUser(serviceResult.User)
	response.Render(rw, res, http.StatusOK)
}
