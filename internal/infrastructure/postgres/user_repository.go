package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// db puede ser el pool o una transacción (ver TxRunner).
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Los constraints únicos de username y email
// se traducen a sus errores de dominio.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "email") {
				return domain.ErrEmailAlreadyExists
			}
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(`SELECT id, username, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.scanOne(`SELECT id, username, email, password_hash, created_at FROM users WHERE username = $1`, username)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT id, username, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
