package entity

import "time"

// Estados de revisión de una Application.
// Máquina de estados: pending -> approved | rejected. No hay transición de salida
// desde approved/rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus indica si status pertenece a la enumeración.
func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

// Application representa la postulación de un applicant a una vacante.
// Única por par (JobID, ApplicantID); el constraint lo garantiza la DB.
type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	ResumeKey   string // key del CV en el blob store (S3)
	CoverLetter string
	Status      string // pending, approved, rejected
	AppliedAt   time.Time
}
