package entity

import "time"

// Job representa una vacante publicada por un employer.
// No existe operación de actualización ni borrado: una vacante publicada es inmutable.
type Job struct {
	ID          string
	Title       string
	CompanyName string
	Location    string
	Description string
	PostedBy    string // User.ID del employer dueño
	CreatedAt   time.Time
}
