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

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	db querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(db querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create persiste una postulación. El constraint único (job_id, applicant_id)
// aflora como domain.ErrAlreadyApplied.
func (r *ApplicationRepo) Create(app *entity.Application) error {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, resume_key, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		app.ID, app.JobID, app.ApplicantID, app.ResumeKey, app.CoverLetter, app.Status, app.AppliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// ExistsByJobAndApplicant reporta si ya hay una postulación del par (job, applicant).
func (r *ApplicationRepo) ExistsByJobAndApplicant(jobID, applicantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists application: %w", err)
	}
	return exists, nil
}

// GetByID obtiene una postulación por ID. (nil, nil) si no existe.
func (r *ApplicationRepo) GetByID(id string) (*entity.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, resume_key, cover_letter, status, applied_at
		FROM applications WHERE id = $1`
	var a entity.Application
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.ResumeKey, &a.CoverLetter, &a.Status, &a.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application by id: %w", err)
	}
	return &a, nil
}

// ListByApplicant lista las postulaciones de un applicant; status vacío = todas.
func (r *ApplicationRepo) ListByApplicant(applicantID, status string) ([]*entity.Application, error) {
	if status == "" {
		query := `
			SELECT id, job_id, applicant_id, resume_key, cover_letter, status, applied_at
			FROM applications WHERE applicant_id = $1 ORDER BY applied_at ASC`
		return r.list(query, applicantID)
	}
	query := `
		SELECT id, job_id, applicant_id, resume_key, cover_letter, status, applied_at
		FROM applications WHERE applicant_id = $1 AND status = $2 ORDER BY applied_at ASC`
	return r.list(query, applicantID, status)
}

// ListByJob lista las postulaciones recibidas por una vacante.
func (r *ApplicationRepo) ListByJob(jobID string) ([]*entity.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, resume_key, cover_letter, status, applied_at
		FROM applications WHERE job_id = $1 ORDER BY applied_at ASC`
	return r.list(query, jobID)
}

// UpdateStatus persiste la decisión de revisión.
func (r *ApplicationRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

func (r *ApplicationRepo) list(query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Application
	for rows.Next() {
		var a entity.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.ResumeKey, &a.CoverLetter, &a.Status, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
