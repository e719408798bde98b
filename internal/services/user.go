package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

// FindOrCreateByEmail resolves an identity to the local user record keyed by
// email. Existing records are returned as-is; name and picture are only stored
// on first login. The UNIQUE(email) constraint plus ON CONFLICT DO NOTHING
// closes the lookup-then-insert race: the loser of a concurrent insert falls
// back to re-reading the winner's row.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, email, name, picture string) (*models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{}
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, picture)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, picture, created_at
	`, email, name, nullableString(picture)).Scan(
		&user.ID, &user.Email, &user.Name, &user.Picture, &user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the insert race; the row exists now.
		return s.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, picture, created_at
		FROM users WHERE id = $1
	`, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.Picture, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, email, name, picture, created_at
		FROM users WHERE email = $1
	`, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Picture, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
