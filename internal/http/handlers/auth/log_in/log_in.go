package login

import (
	e "deepscan/internal/core/domain/errors"
	ratelimiter "deepscan/internal/core/domain/rate_limiter"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	login "deepscan/internal/core/services/log_in"
	"deepscan/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[login.Input, login.Result]
}

func New(service services.Service[login.Input, login.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 256)),
	)
}

type result struct {
	Message string        `json:"message"`
	User    response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderMessage(rw, "Username and password are required.", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceResult, err := h.service.Run(
		r.Context(),
		login.Input{
			Username: user.Username(input.Username),
			Password: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrInvalidCredentials) {
		response.RenderMessage(rw, "Invalid credentials.", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	res := result{Message: "Login successful"}
	res.User.FromDomainUser(serviceResult.User)
	response.Render(rw, res, http.StatusOK)
}
