package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// RegisterParams carries the registration input. Name, About and Avatar are
// optional; domain defaults apply when they are empty.
type RegisterParams struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// ProfileUpdate carries a partial profile mutation. A nil field is left
// unchanged.
type ProfileUpdate struct {
	Name  *string
	About *string
}

// UserService provides account lifecycle operations.
type UserService interface {
	// Register hashes the password and persists a new account.
	// Returns store.ErrEmailExists when the email is already taken.
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)

	// Authenticate verifies the credentials and issues a signed token.
	// Any failure — unknown email or wrong password — returns
	// auth.ErrInvalidCredentials, so responses don't reveal which.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// GetUser retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, id domain.ID) (*domain.User, error)

	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile applies a partial profile update to the caller's own
	// account. The target is always callerID, never client input.
	UpdateProfile(ctx context.Context, callerID domain.ID, update ProfileUpdate) (*domain.User, error)

	// UpdateAvatar changes the caller's own avatar reference.
	UpdateAvatar(ctx context.Context, callerID domain.ID, avatar string) (*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger.With(slog.String("component", "user_service")),
	}
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	user, err := domain.NewUser(params.Name, params.About, params.Avatar, params.Email)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			return nil, domain.NewValidationError("password", "is required", domain.ErrValidation)
		}
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.HashedPassword = digest

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register with existing email")
			return nil, err
		}
		s.logger.Error("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Debug("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate implements UserService.Authenticate.
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for authentication", "error", err)
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	return token, nil
}

// GetUser implements UserService.GetUser.
func (s *userServiceImpl) GetUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers implements UserService.ListUsers.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile implements UserService.UpdateProfile.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, callerID domain.ID, update ProfileUpdate) (*domain.User, error) {
	if update.Name == nil && update.About == nil {
		return nil, domain.NewValidationError("body", "must supply name or about", domain.ErrValidation)
	}

	user, err := s.userStore.UpdateProfile(ctx, callerID, update.Name, update.About)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to update profile", "error", err, "user_id", callerID)
		}
		return nil, err
	}

	s.logger.Debug("profile updated", "user_id", callerID)
	return user, nil
}

// UpdateAvatar implements UserService.UpdateAvatar.
func (s *userServiceImpl) UpdateAvatar(ctx context.Context, callerID domain.ID, avatar string) (*domain.User, error) {
	user, err := s.userStore.UpdateAvatar(ctx, callerID, avatar)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to update avatar", "error", err, "user_id", callerID)
		}
		return nil, err
	}

	s.logger.Debug("avatar updated", "user_id", callerID)
	return user, nil
}
