// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edakaya/heritage-api/internal/lib/jwt"
	"github.com/edakaya/heritage-api/internal/lib/password"
	"github.com/edakaya/heritage-api/internal/models"
	"github.com/edakaya/heritage-api/internal/storage/repository"
)

// Ошибки сервиса аутентификации.
var (
	// ErrEmailTaken email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials единый отказ входа: незнакомый email и неверный
	// пароль для вызывающего неразличимы
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, email, passwordHash string, displayName *string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email (без учёта регистра)
	// или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// выпускает токен доступа. Дубликат email возвращает ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string, displayName *string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, email, hashed, displayName)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Login проверяет пароль пользователя и выпускает JWT.
// Любой сбой — неизвестный email, неверный пароль — сводится
// к ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}
