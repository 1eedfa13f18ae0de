package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	JobUC         *jobs.JobUseCase
	ApplicationUC *applications.ApplicationUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard por rol
	dashboardHandler := NewDashboardHandler(deps.AuthUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)

	// Vacantes
	jobHandler := NewJobHandler(deps.JobUC)
	jobsGroup := protected.Group("/jobs")
	jobsGroup.Get("/", jobHandler.List)
	jobsGroup.Post("/", jobHandler.Create) // rol employer verificado en el handler (denegación silenciosa)
	jobsGroup.Get("/:id", jobHandler.GetByID)

	// Postulaciones
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	jobsGroup.Post("/:id/apply", applicationHandler.Apply) // rol applicant verificado en el use case
	jobsGroup.Get("/:id/applicants", applicationHandler.JobApplicants)

	appsGroup := protected.Group("/applications")
	appsGroup.Get("/:id", applicationHandler.GetByID)
	appsGroup.Post("/:id/review", applicationHandler.Review)

	// Dashboards propios por rol
	protected.Get("/employer/jobs", jobHandler.MyJobs)
	protected.Get("/applicant/applications",
		RequireRole(entity.RoleApplicant),
		applicationHandler.MyApplications,
	)
}
