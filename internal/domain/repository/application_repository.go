package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// ApplicationRepository define el puerto de persistencia para Application.
type ApplicationRepository interface {
	// Create devuelve domain.ErrAlreadyApplied si ya existe el par (job, applicant).
	Create(app *entity.Application) error
	// ExistsByJobAndApplicant reporta si ya hay una postulación del par (job, applicant).
	ExistsByJobAndApplicant(jobID, applicantID string) (bool, error)
	GetByID(id string) (*entity.Application, error)
	// ListByApplicant con status vacío lista todas las postulaciones del applicant.
	ListByApplicant(applicantID, status string) ([]*entity.Application, error)
	ListByJob(jobID string) ([]*entity.Application, error)
	UpdateStatus(id, status string) error
}
