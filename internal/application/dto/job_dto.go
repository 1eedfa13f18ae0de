package dto

import "time"

// PostJobRequest entrada para publicar una vacante (solo employers).
type PostJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Location    string `json:"location" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
}

// JobResponse salida de una vacante.
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	PostedBy    string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobListResponse listado de vacantes (sin paginación: el tablón se lista completo).
type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Total int           `json:"total"`
}
