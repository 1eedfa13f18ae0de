package applications

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ApplyInput entrada para postularse: la vacante, la carta y el archivo de CV.
type ApplyInput struct {
	JobID       string
	CoverLetter string
	Resume      io.Reader
	Filename    string
	ContentType string
}

// ApplicationUseCase casos de uso del flujo de postulación y revisión.
type ApplicationUseCase struct {
	appRepo     repository.ApplicationRepository
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
	resumes     ResumeStore
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	profileRepo repository.ProfileRepository,
	resumes ResumeStore,
) *ApplicationUseCase {
	return &ApplicationUseCase{appRepo: appRepo, jobRepo: jobRepo, profileRepo: profileRepo, resumes: resumes}
}

// Apply crea una postulación con status pending.
// Orden de verificación: capacidad (rol applicant, leído del perfil y no del token),
// existencia de la vacante, duplicado del par (job, applicant), subida del CV y
// por último el insert. El chequeo de duplicado va antes de la subida para no
// dejar objetos huérfanos en el bucket; el constraint único de la DB sigue
// cubriendo la carrera entre chequeo e insert.
func (uc *ApplicationUseCase) Apply(ctx context.Context, applicantID string, in ApplyInput) (*dto.ApplicationResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(applicantID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Role != entity.RoleApplicant {
		return nil, domain.ErrForbidden
	}
	job, err := uc.jobRepo.GetByID(in.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.appRepo.ExistsByJobAndApplicant(job.ID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	id := uuid.New().String()
	key := fmt.Sprintf("resumes/%s%s", id, filepath.Ext(in.Filename))
	storedKey, err := uc.resumes.Upload(ctx, key, in.Resume, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("subir CV: %w", err)
	}

	app := &entity.Application{
		ID:          id,
		JobID:       job.ID,
		ApplicantID: applicantID,
		ResumeKey:   storedKey,
		CoverLetter: in.CoverLetter,
		Status:      entity.StatusPending,
		AppliedAt:   time.Now(),
	}
	if err := uc.appRepo.Create(app); err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// ListByApplicant lista las postulaciones propias. Un filtro de status fuera de
// {pending, approved, rejected} se ignora y se lista sin filtrar.
func (uc *ApplicationUseCase) ListByApplicant(applicantID, statusFilter string) (*dto.ApplicationListResponse, error) {
	if !entity.ValidStatus(statusFilter) {
		statusFilter = ""
	}
	list, err := uc.appRepo.ListByApplicant(applicantID, statusFilter)
	if err != nil {
		return nil, err
	}
	return toApplicationList(list), nil
}

// ListJobApplicants lista las postulaciones de una vacante propia.
// La verificación de propiedad está plegada en el lookup: una vacante ajena
// (o inexistente) responde ErrNotFound, nunca 403.
func (uc *ApplicationUseCase) ListJobApplicants(employerID, jobID string) (*dto.ApplicationListResponse, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.PostedBy != employerID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	return toApplicationList(list), nil
}

// GetForEmployer devuelve la postulación solo si el employer es dueño de la
// vacante referida; si no, ErrForbidden (distinto de ErrNotFound).
func (uc *ApplicationUseCase) GetForEmployer(employerID, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := uc.loadOwned(employerID, applicationID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// Review aplica la decisión del employer dueño sobre una postulación pendiente.
// Máquina de estados: pending -> approved | rejected. Una decisión fuera del
// conjunto no toca el estado (ErrInvalidDecision) y una postulación ya decidida
// no admite más transiciones (ErrAlreadyReviewed).
func (uc *ApplicationUseCase) Review(employerID, applicationID, decision string) (*dto.ApplicationResponse, error) {
	app, err := uc.loadOwned(employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if decision != entity.StatusApproved && decision != entity.StatusRejected {
		return nil, domain.ErrInvalidDecision
	}
	if app.Status != entity.StatusPending {
		return nil, domain.ErrAlreadyReviewed
	}
	if err := uc.appRepo.UpdateStatus(app.ID, decision); err != nil {
		return nil, err
	}
	app.Status = decision
	return toApplicationResponse(app), nil
}

// loadOwned carga la postulación y verifica que el employer sea dueño de la vacante.
func (uc *ApplicationUseCase) loadOwned(employerID, applicationID string) (*entity.Application, error) {
	app, err := uc.appRepo.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	job, err := uc.jobRepo.GetByID(app.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.PostedBy != employerID {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

func toApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}
	return &dto.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		ResumeKey:   a.ResumeKey,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
}

func toApplicationList(list []*entity.Application) *dto.ApplicationListResponse {
	items := make([]dto.ApplicationResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toApplicationResponse(a))
	}
	return &dto.ApplicationListResponse{Items: items, Total: len(items)}
}
