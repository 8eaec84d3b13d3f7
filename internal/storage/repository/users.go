package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edakaya/heritage-api/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его ID и роль.
// Дубликат email (без учёта регистра) возвращает ErrAlreadyExists.
func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string, displayName *string) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	u := &models.User{}
	var role string
	query := `INSERT INTO users (email, password_hash, display_name, role)
			  VALUES ($1, $2, $3, 'user')
			  RETURNING id, role;`
	if err := s.DB.QueryRowContext(ctx, query,
		email, passwordHash, displayName).Scan(&u.ID, &role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.DisplayName = displayName
	u.Role = models.ParseRole(role)
	return u, nil
}

// GetUserByEmail возвращает пользователя по email без учёта регистра.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, display_name, role, created_at, updated_at
			  FROM users
			  WHERE LOWER(email) = LOWER($1)`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	var displayName sql.NullString
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &displayName,
		&role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if displayName.Valid {
		u.DisplayName = &displayName.String
	}
	u.Role = models.ParseRole(role)
	return u, nil
}
