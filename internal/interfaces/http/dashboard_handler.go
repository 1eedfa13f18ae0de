package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// Rutas de dashboard por rol.
const (
	EmployerDashboardPath  = "/api/employer"
	ApplicantDashboardPath = "/api/applicant"
)

// DashboardHandler resuelve el dashboard según el rol del usuario autenticado.
type DashboardHandler struct {
	uc *auth.AuthUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *auth.AuthUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard según rol
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.DashboardResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	// El rol se relee del perfil (fuente de verdad), no del claim del token.
	// Un usuario sin perfil o con rol desconocido es un error explícito:
	// no existe rama por defecto hacia el dashboard de applicant.
	role, err := h.uc.ResolveRole(GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrProfileMissing:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROFILE_MISSING", Message: "el usuario no tiene perfil"})
		case domain.ErrInvalidRole:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "el perfil tiene un rol desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	dashboard := ApplicantDashboardPath
	if role == entity.RoleEmployer {
		dashboard = EmployerDashboardPath
	}
	return c.JSON(dto.DashboardResponse{Role: role, Dashboard: dashboard})
}
