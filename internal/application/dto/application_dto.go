package dto

import "time"

// ReviewRequest entrada para decidir sobre una postulación.
type ReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// ApplicationResponse salida de una postulación.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	ResumeKey   string    `json:"resume_key"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

// ApplicationListResponse listado de postulaciones.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Total int                   `json:"total"`
}
