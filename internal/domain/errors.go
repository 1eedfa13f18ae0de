package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidRole           = errors.New("rol inválido")
	ErrProfileMissing        = errors.New("el usuario no tiene perfil")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrAlreadyApplied        = errors.New("ya existe una postulación para esta vacante")
	ErrAlreadyReviewed       = errors.New("la postulación ya fue revisada")
	ErrInvalidDecision       = errors.New("decisión inválida")
)
