package getdashboard

import (
	"context"
	e "deepscan/internal/core/domain/errors"
	"deepscan/internal/core/domain/logging"
	"deepscan/internal/core/domain/user"
	"deepscan/internal/core/services"
	"errors"
)

// The dashboard trusts the caller-supplied username; there is no session to
// verify. Known weak design, kept deliberately.

type Input struct {
	Username user.Username
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by username.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
