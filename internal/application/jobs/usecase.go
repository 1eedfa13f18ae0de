package jobs

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/search"
)

// JobUseCase casos de uso sobre vacantes: publicar, buscar, detalle y listado propio.
// No hay Update ni Delete: una vacante publicada es inmutable.
type JobUseCase struct {
	repo repository.JobRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(repo repository.JobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

// Post publica una vacante a nombre del employer. La verificación de rol la
// hace el handler (denegación silenciosa con redirect); aquí solo se persiste.
func (uc *JobUseCase) Post(employerID string, in dto.PostJobRequest) (*dto.JobResponse, error) {
	job := &entity.Job{
		ID:          uuid.New().String(),
		Title:       in.Title,
		CompanyName: in.CompanyName,
		Location:    in.Location,
		Description: in.Description,
		PostedBy:    employerID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Search lista todas las vacantes; si query no está vacía filtra por coincidencia
// de substring normalizado (minúsculas, sin tildes) en título, empresa o ubicación (OR).
func (uc *JobUseCase) Search(query string) (*dto.JobListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		if !search.Matches(query, j.Title, j.CompanyName, j.Location) {
			continue
		}
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una vacante por ID. Devuelve (nil, nil) si no existe.
func (uc *JobUseCase) GetByID(id string) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	return toJobResponse(job), nil
}

// ListByEmployer lista las vacantes publicadas por el employer.
func (uc *JobUseCase) ListByEmployer(employerID string) (*dto.JobListResponse, error) {
	list, err := uc.repo.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobListResponse{Items: items, Total: len(items)}, nil
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	return &dto.JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		CompanyName: j.CompanyName,
		Location:    j.Location,
		Description: j.Description,
		PostedBy:    j.PostedBy,
		CreatedAt:   j.CreatedAt,
	}
}
