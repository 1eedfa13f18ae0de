package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// ApplicationHandler maneja el flujo de postulación y revisión (protegido).
type ApplicationHandler struct {
	uc *applications.ApplicationUseCase
}

// NewApplicationHandler construye el handler.
func NewApplicationHandler(uc *applications.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply godoc
// @Summary      Postularse a una vacante (multipart: resume + cover_letter)
// @Tags         applications
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id            path      string  true   "ID de la vacante"
// @Param        resume        formData  file    true   "CV (archivo)"
// @Param        cover_letter  formData  string  false  "Carta de presentación"
// @Success      201  {object}  dto.ApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resume (archivo) es requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo de CV"})
	}
	defer file.Close()

	out, err := h.uc.Apply(c.Context(), GetUserID(c), applications.ApplyInput{
		JobID:       jobID,
		CoverLetter: c.FormValue("cover_letter"),
		Resume:      file,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un applicant puede postularse"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case domain.ErrAlreadyApplied:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "ya existe una postulación a esta vacante"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyApplications godoc
// @Summary      Postulaciones del applicant autenticado
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro: pending, approved o rejected (otro valor se ignora)"
// @Success      200  {object}  dto.ApplicationListResponse
// @Router       /api/applicant/applications [get]
func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	out, err := h.uc.ListByApplicant(GetUserID(c), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// JobApplicants godoc
// @Summary      Postulaciones recibidas por una vacante propia
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.ApplicationListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/applicants [get]
func (h *ApplicationHandler) JobApplicants(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListJobApplicants(GetUserID(c), jobID)
	if err != nil {
		// Propiedad plegada en el lookup: vacante ajena responde igual que inexistente.
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una postulación (solo el employer dueño de la vacante)
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la postulación"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetForEmployer(GetUserID(c), id)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(out)
}

// Review godoc
// @Summary      Aprobar o rechazar una postulación pendiente
// @Tags         applications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la postulación"
// @Param        body  body  dto.ReviewRequest  true  "decision: approved | rejected"
// @Success      200   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications/{id}/review [post]
func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Review(GetUserID(c), id, in.Decision)
	if err != nil {
		return h.reviewError(c, err)
	}
	return c.JSON(out)
}

// reviewError mapea los errores del flujo de revisión a HTTP.
func (h *ApplicationHandler) reviewError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "postulación no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vacante pertenece a otro employer"})
	case domain.ErrInvalidDecision:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DECISION", Message: "decision debe ser approved o rejected"})
	case domain.ErrAlreadyReviewed:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVIEWED", Message: "la postulación ya fue decidida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
