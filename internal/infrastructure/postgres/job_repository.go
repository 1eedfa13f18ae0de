package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	db querier
}

// NewJobRepository construye el adaptador de persistencia para vacantes.
func NewJobRepository(db querier) *JobRepo {
	return &JobRepo{db: db}
}

// Create persiste una nueva vacante.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, title, company_name, location, description, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		job.ID, job.Title, job.CompanyName, job.Location, job.Description, job.PostedBy, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una vacante por ID. (nil, nil) si no existe.
func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	query := `
		SELECT id, title, company_name, location, description, posted_by, created_at
		FROM jobs WHERE id = $1`
	var j entity.Job
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Description, &j.PostedBy, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	return &j, nil
}

// ListAll lista todas las vacantes en orden de publicación.
func (r *JobRepo) ListAll() ([]*entity.Job, error) {
	query := `
		SELECT id, title, company_name, location, description, posted_by, created_at
		FROM jobs ORDER BY created_at ASC`
	return r.list(query)
}

// ListByEmployer lista las vacantes publicadas por un employer.
func (r *JobRepo) ListByEmployer(employerID string) ([]*entity.Job, error) {
	query := `
		SELECT id, title, company_name, location, description, posted_by, created_at
		FROM jobs WHERE posted_by = $1 ORDER BY created_at ASC`
	return r.list(query, employerID)
}

func (r *JobRepo) list(query string, args ...any) ([]*entity.Job, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Description, &j.PostedBy, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}
