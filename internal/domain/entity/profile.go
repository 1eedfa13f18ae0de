package entity

import "time"

// Roles válidos para Profile. Enumeración cerrada: cualquier otro valor es un error,
// nunca se trata "no es employer" como "applicant".
const (
	RoleEmployer  = "employer"
	RoleApplicant = "applicant"
)

// ValidRole indica si role pertenece a la enumeración.
func ValidRole(role string) bool {
	return role == RoleEmployer || role == RoleApplicant
}

// Profile asocia un User con exactamente un rol. Inmutable después de creado.
type Profile struct {
	UserID    string
	Role      string // employer, applicant
	CreatedAt time.Time
}
