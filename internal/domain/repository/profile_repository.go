package repository

import "github.com/jhoicas/Empleos-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para Profile (1:1 con User).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
}
