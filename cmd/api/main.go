package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/jobs"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/postgres"
	infras3 "github.com/jhoicas/Empleos-api/internal/infrastructure/s3"
	httpRouter "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resumeStore, err := infras3.NewResumeStore(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento de CV")
	}

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	jobUC := jobs.NewJobUseCase(jobRepo)
	applicationUC := applications.NewApplicationUseCase(appRepo, jobRepo, profileRepo, resumeStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
