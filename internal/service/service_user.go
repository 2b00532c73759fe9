package service

import (
	"context"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
)

// Field length limits of the usuario table.
const (
	maxNomeLen  = 50
	maxLoginLen = 30
	maxSenhaLen = 30
)

// userService is the concrete implementation of [UserService].
// It owns the field-length rules and translates empty results and zero
// affected-row counts into [store.ErrUserNotFound]; everything else is
// delegated to the repository.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, login string) (store.Row, error) {
	rows, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		return store.Row{}, err
	}

	if len(rows) == 0 {
		return store.Row{}, store.ErrUserNotFound
	}

	return rows[0], nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]store.Row, error) {
	rows, err := s.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// an empty table is reported the same way as a missing user
	if len(rows) == 0 {
		return nil, store.ErrUserNotFound
	}

	return rows, nil
}

func (s *userService) CreateUser(ctx context.Context, user models.User) error {
	if err := validateFieldLengths(user); err != nil {
		return err
	}

	return s.userRepository.Create(ctx, user)
}

func (s *userService) UpdateUser(ctx context.Context, login string, user models.User) error {
	if err := validateFieldLengths(user); err != nil {
		return err
	}

	return s.userRepository.Update(ctx, login, user)
}

func (s *userService) DeleteUser(ctx context.Context, login string) error {
	return s.userRepository.Delete(ctx, login)
}

// validateFieldLengths enforces the 50/30/30 limits. Lengths are measured
// in bytes, matching the column sizes the schema enforces.
func validateFieldLengths(user models.User) error {
	if len(user.Nome) > maxNomeLen || len(user.Login) > maxLoginLen || len(user.Senha) > maxSenhaLen {
		return ErrFieldTooLong
	}

	return nil
}
