package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(db querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create persiste el perfil. user_id es PK: un segundo perfil para el mismo
// usuario viola el constraint (relación estrictamente 1:1).
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, role, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.db.Exec(context.Background(), query,
		profile.UserID, profile.Role, profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario. (nil, nil) si no tiene.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `SELECT user_id, role, created_at FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.db.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.Role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
