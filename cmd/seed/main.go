// seed carga datos de demostración: un employer con dos vacantes y un
// applicant con una postulación pendiente.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración de DB que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	employer := &entity.User{
		ID:           uuid.New().String(),
		Username:     "acme_hr",
		Email:        "hr@acme.example",
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	applicant := &entity.User{
		ID:           uuid.New().String(),
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
	}

	for _, u := range []*entity.User{employer, applicant} {
		if err := userRepo.Create(u); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar usuario %s: %v\n", u.Username, err)
			os.Exit(1)
		}
	}
	roles := map[string]string{employer.ID: entity.RoleEmployer, applicant.ID: entity.RoleApplicant}
	for userID, role := range roles {
		if err := profileRepo.Create(&entity.Profile{UserID: userID, Role: role, CreatedAt: now}); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar perfil: %v\n", err)
			os.Exit(1)
		}
	}

	backend := &entity.Job{
		ID:          uuid.New().String(),
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		Location:    "Remote",
		Description: "Servicios en Go sobre PostgreSQL.",
		PostedBy:    employer.ID,
		CreatedAt:   now,
	}
	data := &entity.Job{
		ID:          uuid.New().String(),
		Title:       "Data Analyst",
		CompanyName: "Acme",
		Location:    "Bogotá",
		Description: "Reportes y tableros para el área comercial.",
		PostedBy:    employer.ID,
		CreatedAt:   now.Add(time.Second),
	}
	for _, j := range []*entity.Job{backend, data} {
		if err := jobRepo.Create(j); err != nil {
			fmt.Fprintf(os.Stderr, "Insertar vacante %s: %v\n", j.Title, err)
			os.Exit(1)
		}
	}

	app := &entity.Application{
		ID:          uuid.New().String(),
		JobID:       backend.ID,
		ApplicantID: applicant.ID,
		ResumeKey:   "resumes/demo-jdoe.pdf",
		CoverLetter: "Me interesa la posición.",
		Status:      entity.StatusPending,
		AppliedAt:   now,
	}
	if err := appRepo.Create(app); err != nil {
		fmt.Fprintf(os.Stderr, "Insertar postulación: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Datos demo cargados: employer=%s applicant=%s vacantes=2 postulaciones=1\n",
		employer.Username, applicant.Username)
}
