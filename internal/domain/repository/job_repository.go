package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// JobRepository define el puerto de persistencia para Job.
// No expone Update ni Delete: las vacantes publicadas son inmutables.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	ListAll() ([]*entity.Job, error)
	ListByEmployer(employerID string) ([]*entity.Job, error)
}
