package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// JobHandler maneja las peticiones HTTP para vacantes (protegido).
type JobHandler struct {
	uc *jobs.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *jobs.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar vacante (solo employer)
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostJobRequest  true  "Datos de la vacante"
// @Success      201   {object}  dto.JobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	// Denegación silenciosa: un no-employer no recibe error, se le redirige
	// al dashboard neutro sin mensaje.
	if GetRole(c) != entity.RoleEmployer {
		return c.Redirect("/api/dashboard", fiber.StatusSeeOther)
	}
	var in dto.PostJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.CompanyName == "" || in.Location == "" || in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, company_name, location y description son requeridos"})
	}
	out, err := h.uc.Post(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Buscar vacantes
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Substring a buscar en título, empresa o ubicación"
// @Success      200  {object}  dto.JobListResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de vacante
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
	}
	return c.JSON(out)
}

// MyJobs godoc
// @Summary      Vacantes publicadas por el usuario autenticado
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.JobListResponse
// @Router       /api/employer/jobs [get]
func (h *JobHandler) MyJobs(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployer(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
